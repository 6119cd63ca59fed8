package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// CreateOrderCommandHandler persists a new order and announces it.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        kernel.IDGenerator
	clock      kernel.Clock
	metrics    ports.SalesMetrics
	notifier   changeNotifier
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	ids kernel.IDGenerator,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
	metrics ports.SalesMetrics,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		clock:      clock,
		metrics:    metrics,
		notifier: changeNotifier{
			publisher: publisher,
			ids:       ids,
			clock:     clock,
			logger:    logger.With("component", "CreateOrderCommandHandler"),
		},
	}
}

// Handle returns the id of the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	orderedAt := kernel.NewDateTime(h.clock)
	if cmd.OrderedAt() != "" {
		var err error
		if orderedAt, err = kernel.ParseDateTime(cmd.OrderedAt(), h.clock); err != nil {
			return kernel.UUID{}, err
		}
	}

	aggregate, err := order.NewOrder(h.ids, cmd.CustomerID(), cmd.Currency(), orderedAt)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.metrics.OrderCreated()
	h.notifier.notify(ctx, aggregate, ports.EventOperationCreate)

	return aggregate.ID(), nil
}
