package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// Event operations besides the lifecycle operations of order.Operation.
const (
	EventOperationCreate  = "create"
	EventOperationAddItem = "add_item"
	EventOperationExpire  = "expire"
)

// OrderChangedEvent describes an order after a committed change.
type OrderChangedEvent struct {
	EventID    kernel.UUID
	OrderID    kernel.UUID
	CustomerID string
	State      order.State
	Operation  string
	Total      kernel.Money
	OccurredAt time.Time
}

// NewOrderChangedEvent snapshots o after operation.
func NewOrderChangedEvent(
	ids kernel.IDGenerator,
	clock kernel.Clock,
	o *order.Order,
	operation string,
) (OrderChangedEvent, error) {
	total, err := o.CalculateTotalAmount()
	if err != nil {
		return OrderChangedEvent{}, err
	}

	return OrderChangedEvent{
		EventID:    ids.NewID(),
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		State:      o.State(),
		Operation:  operation,
		Total:      total,
		OccurredAt: clock.Now(),
	}, nil
}

// OrderEventPublisher delivers order events to interested parties outside the service.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
