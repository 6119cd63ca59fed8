package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
)

// AddOrderItemCommandHandler loads an order under its lock, appends the item and
// stores the order.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
	ids        kernel.IDGenerator
	metrics    ports.SalesMetrics
	notifier   changeNotifier
	logger     *slog.Logger
}

// NewAddOrderItemCommandHandler creates a handler for appending order items.
// Requires an OrderUoWFactory and an OrderLocker to serialize writers per order.
func NewAddOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.OrderLocker,
	ids kernel.IDGenerator,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
	metrics ports.SalesMetrics,
	logger *slog.Logger,
) AddOrderItemCommandHandler {
	logger = logger.With("component", "AddOrderItemCommandHandler")
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		ids:        ids,
		metrics:    metrics,
		notifier:   changeNotifier{publisher: publisher, ids: ids, clock: clock, logger: logger},
		logger:     logger,
	}
}

// Handle returns the id of the new item.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	release, err := h.locker.Lock(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	defer unlock(ctx, release, h.logger, cmd.OrderID())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	item, err := aggregate.AddItem(h.ids, cmd.ProductID(), cmd.Quantity(), cmd.UnitPrice())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.metrics.OrderItemAdded()
	h.notifier.notify(ctx, aggregate, ports.EventOperationAddItem)

	return item.ID(), nil
}
