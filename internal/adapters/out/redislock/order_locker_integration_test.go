package redislock_test

import (
	"context"
	"testing"
	"time"

	"sales/internal/adapters/out/redislock"
	"sales/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type OrderLockerIntegrationTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
}

func (s *OrderLockerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	client, err := redislock.NewClient(ctx, url)
	s.Require().NoError(err)
	s.client = client
}

func (s *OrderLockerIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *OrderLockerIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *OrderLockerIntegrationTestSuite) newLocker(opts ...redislock.Option) *redislock.OrderLocker {
	opts = append([]redislock.Option{redislock.WithRetryInterval(5 * time.Millisecond)}, opts...)
	return redislock.NewOrderLocker(s.client, kernel.RandomIDGenerator{}, opts...)
}

func (s *OrderLockerIntegrationTestSuite) TestLock_BlocksSecondHolderUntilRelease() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	first := s.newLocker()
	second := s.newLocker()

	unlock, err := first.Lock(ctx, orderID)
	s.Require().NoError(err)

	acquired := make(chan error, 1)
	go func() {
		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		unlockSecond, lockErr := second.Lock(waitCtx, orderID)
		if lockErr == nil {
			lockErr = unlockSecond(ctx)
		}
		acquired <- lockErr
	}()

	select {
	case <-acquired:
		s.Fail("second holder acquired a held lock")
	case <-time.After(100 * time.Millisecond):
	}

	s.Require().NoError(unlock(ctx))
	s.Require().NoError(<-acquired)
}

func (s *OrderLockerIntegrationTestSuite) TestLock_HonoursContext() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	unlock, err := s.newLocker().Lock(ctx, orderID)
	s.Require().NoError(err)
	defer func() { _ = unlock(ctx) }()

	timeout, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = s.newLocker().Lock(timeout, orderID)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *OrderLockerIntegrationTestSuite) TestUnlock_DoesNotReleaseAnotherHoldersLock() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	unlockExpired, err := s.newLocker(redislock.WithTTL(50 * time.Millisecond)).Lock(ctx, orderID)
	s.Require().NoError(err)

	time.Sleep(120 * time.Millisecond)

	unlockCurrent, err := s.newLocker().Lock(ctx, orderID)
	s.Require().NoError(err)

	s.ErrorIs(unlockExpired(ctx), redislock.ErrLockLost)

	exists, err := s.client.Exists(ctx, "sales:order-lock:"+orderID.String()).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)

	s.NoError(unlockCurrent(ctx))
}

func TestOrderLockerIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed integration test in short mode")
	}
	suite.Run(t, new(OrderLockerIntegrationTestSuite))
}
