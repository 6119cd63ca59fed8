package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
)

// ChangeOrderStateCommandHandler applies a lifecycle operation to an order under its lock.
type ChangeOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
	metrics    ports.SalesMetrics
	notifier   changeNotifier
	logger     *slog.Logger
}

// NewChangeOrderStateCommandHandler creates a handler for order transitions.
// Requires an OrderUoWFactory and an OrderLocker.
func NewChangeOrderStateCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.OrderLocker,
	ids kernel.IDGenerator,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
	metrics ports.SalesMetrics,
	logger *slog.Logger,
) ChangeOrderStateCommandHandler {
	logger = logger.With("component", "ChangeOrderStateCommandHandler")
	return ChangeOrderStateCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		metrics:    metrics,
		notifier:   changeNotifier{publisher: publisher, ids: ids, clock: clock, logger: logger},
		logger:     logger,
	}
}

// Handle loads the order under its lock, applies the operation and persists
// the new state. An invalid transition leaves the stored order unchanged.
func (h ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locker.Lock(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	defer unlock(ctx, release, h.logger, cmd.OrderID())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Apply(cmd.Operation()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.OrderTransitioned(cmd.Operation())
	h.notifier.notify(ctx, aggregate, cmd.Operation().String())

	return nil
}
