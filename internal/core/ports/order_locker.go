package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
)

// UnlockFunc releases a lock obtained from OrderLocker.
type UnlockFunc func(ctx context.Context) error

// OrderLocker serializes mutations of a single order across concurrent callers.
// Lock blocks until the order is free or ctx is done.
type OrderLocker interface {
	Lock(ctx context.Context, orderID kernel.UUID) (UnlockFunc, error)
}
