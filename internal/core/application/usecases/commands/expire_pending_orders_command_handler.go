package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// ExpirePendingOrdersCommandHandler cancels stale PENDING orders one at a time, each
// in its own transaction and under its own lock, so one failing order does not
// hold back the rest.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
	clock      kernel.Clock
	metrics    ports.SalesMetrics
	notifier   changeNotifier
	logger     *slog.Logger
}

// NewExpirePendingOrdersCommandHandler creates a handler that cancels stale
// pending orders. Each order is cancelled in its own unit of work under the
// order lock, so one failure does not stop the sweep.
func NewExpirePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.OrderLocker,
	ids kernel.IDGenerator,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
	metrics ports.SalesMetrics,
	logger *slog.Logger,
) ExpirePendingOrdersCommandHandler {
	logger = logger.With("component", "ExpirePendingOrdersCommandHandler")
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
		metrics:    metrics,
		notifier:   changeNotifier{publisher: publisher, ids: ids, clock: clock, logger: logger},
		logger:     logger,
	}
}

// Handle returns how many orders were cancelled. Failures on individual orders are
// joined into the returned error after every candidate has been tried.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.clock.Now().Add(-cmd.TTL())
	candidates, err := h.listCandidates(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	var (
		expired int
		errList []error
	)
	for _, orderID := range candidates {
		if ctx.Err() != nil {
			errList = append(errList, ctx.Err())
			break
		}
		cancelled, expireErr := h.expire(ctx, orderID)
		if expireErr != nil {
			errList = append(errList, expireErr)
			continue
		}
		if cancelled {
			expired++
		}
	}

	if expired > 0 {
		h.metrics.OrdersExpired(expired)
	}
	return expired, errors.Join(errList...)
}

func (h ExpirePendingOrdersCommandHandler) listCandidates(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.OrderRepository().ListPendingOrderedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return candidates, nil
}

// expire re-reads the order under its lock; an order that left PENDING in the
// meantime is skipped and reported as not cancelled.
func (h ExpirePendingOrdersCommandHandler) expire(ctx context.Context, orderID kernel.UUID) (bool, error) {
	release, err := h.locker.Lock(ctx, orderID)
	if err != nil {
		return false, err
	}
	defer unlock(ctx, release, h.logger, orderID)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return false, err
	}
	if aggregate.State() != order.Pending {
		return false, nil
	}

	if err = aggregate.Cancel(); err != nil {
		return false, err
	}
	if err = repo.Update(ctx, aggregate); err != nil {
		return false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.logger.InfoContext(ctx, "pending order expired", "order_id", orderID.String())
	h.notifier.notify(ctx, aggregate, ports.EventOperationExpire)
	return true, nil
}
