package redislock

import (
	"context"
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix        = "sales:order-lock:"
	DefaultTTL           = 30 * time.Second
	DefaultRetryInterval = 25 * time.Millisecond
)

// ErrLockLost is returned by unlock when the key expired or was taken over
// before the holder released it.
var ErrLockLost = errors.New("order lock was lost before release")

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// OrderLocker takes an order lock with SET NX PX. The TTL bounds how long a
// crashed holder can keep an order blocked.
type OrderLocker struct {
	client        redis.UniversalClient
	ids           kernel.IDGenerator
	ttl           time.Duration
	retryInterval time.Duration
}

// Option configures an OrderLocker.
type Option func(*OrderLocker)

// WithTTL sets how long a lock survives a crashed holder.
func WithTTL(ttl time.Duration) Option {
	return func(l *OrderLocker) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

// WithRetryInterval sets the pause between acquisition attempts.
func WithRetryInterval(interval time.Duration) Option {
	return func(l *OrderLocker) {
		if interval > 0 {
			l.retryInterval = interval
		}
	}
}

// NewOrderLocker creates a Redis-backed locker. Lock tokens come from ids.
func NewOrderLocker(client redis.UniversalClient, ids kernel.IDGenerator, opts ...Option) *OrderLocker {
	l := &OrderLocker{
		client:        client,
		ids:           ids,
		ttl:           DefaultTTL,
		retryInterval: DefaultRetryInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Lock polls until the key is free or ctx is done.
func (l *OrderLocker) Lock(ctx context.Context, orderID kernel.UUID) (ports.UnlockFunc, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	key := lockKeyPrefix + orderID.String()
	token := l.ids.NewID().String()

	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if acquired {
			return l.unlockFunc(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *OrderLocker) unlockFunc(key, token string) ports.UnlockFunc {
	return func(ctx context.Context) error {
		deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrLockLost
		}
		return nil
	}
}
