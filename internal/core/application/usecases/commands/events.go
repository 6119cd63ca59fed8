package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// changeNotifier publishes OrderChangedEvent after a commit. Publish failures are
// logged and swallowed: the change is already durable.
type changeNotifier struct {
	publisher ports.OrderEventPublisher
	ids       kernel.IDGenerator
	clock     kernel.Clock
	logger    *slog.Logger
}

func (n changeNotifier) notify(ctx context.Context, o *order.Order, operation string) {
	event, err := ports.NewOrderChangedEvent(n.ids, n.clock, o, operation)
	if err == nil {
		err = n.publisher.PublishOrderChanged(ctx, event)
	}
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to publish order changed event",
			"order_id", o.ID().String(),
			"operation", operation,
			"error", err,
		)
	}
}

// unlock releases an order lock even when ctx was cancelled mid-command.
func unlock(ctx context.Context, release ports.UnlockFunc, logger *slog.Logger, orderID kernel.UUID) {
	if err := release(context.WithoutCancel(ctx)); err != nil {
		logger.WarnContext(ctx, "failed to release order lock", "order_id", orderID.String(), "error", err)
	}
}
