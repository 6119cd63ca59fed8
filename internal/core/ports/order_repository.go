// Package ports declares the contracts the application core expects from
// infrastructure: persistence, transactions, per-order locking, event
// publishing and metrics.
package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Add stores a new order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the order's state and inserts items appended since it was loaded.
	// Stored items are immutable and are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items in insertion order. A missing order yields
	// an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListPendingOrderedBefore returns the ids of PENDING orders whose orderedAt
	// is strictly before cutoff, oldest first.
	ListPendingOrderedBefore(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error)
}
