// Package inproc holds single-process adapters used when no shared infrastructure
// is configured.
package inproc

import (
	"context"
	"sync"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
)

type lockEntry struct {
	held chan struct{}
	refs int
}

// OrderLocker serializes work per order inside one process. Entries are dropped
// once nobody holds or waits for them, so the map does not grow with the number
// of orders ever touched.
type OrderLocker struct {
	mu    sync.Mutex
	locks map[kernel.UUID]*lockEntry
}

// NewOrderLocker creates a locker for a single process.
func NewOrderLocker() *OrderLocker {
	return &OrderLocker{locks: make(map[kernel.UUID]*lockEntry)}
}

// Lock blocks until the order is free or ctx is done.
func (l *OrderLocker) Lock(ctx context.Context, orderID kernel.UUID) (ports.UnlockFunc, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	entry := l.acquire(orderID)

	select {
	case entry.held <- struct{}{}:
	case <-ctx.Done():
		l.release(orderID, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-entry.held
			l.release(orderID, entry)
		})
		return nil
	}, nil
}

func (l *OrderLocker) acquire(orderID kernel.UUID) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[orderID]
	if !ok {
		entry = &lockEntry{held: make(chan struct{}, 1)}
		l.locks[orderID] = entry
	}
	entry.refs++
	return entry
}

func (l *OrderLocker) release(orderID kernel.UUID, entry *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, orderID)
	}
}

// Len reports how many orders currently have holders or waiters.
func (l *OrderLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
