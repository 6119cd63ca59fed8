package commands_test

import (
	"errors"
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpirePendingOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel stale pending orders and skip moved ones", func(t *testing.T) {
		ctx := t.Context()
		ttl := 24 * time.Hour
		cutoff := fixedNow.Add(-ttl)

		stale := pendingOrder(cutoff.Add(-time.Hour))
		confirmedMeanwhile := pendingOrder(cutoff.Add(-2 * time.Hour))
		require.NoError(t, confirmedMeanwhile.Confirm())
		broken := pendingOrder(cutoff.Add(-3 * time.Hour))

		repo := new(MockOrderRepository)
		factory, uow := newOrderUoW(repo)
		locker := new(MockLocker)
		publisher := new(MockPublisher)
		metrics := new(MockMetrics)

		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("ListPendingOrderedBefore", ctx, cutoff).
			Return([]kernel.UUID{stale.ID(), confirmedMeanwhile.ID(), broken.ID()}, nil).Once()
		for _, o := range []*order.Order{stale, confirmedMeanwhile, broken} {
			locker.On("Lock", ctx, o.ID()).Return(nil, nil).Once()
			locker.On("Unlock", o.ID()).Return(nil).Once()
		}
		repo.On("Get", ctx, stale.ID()).Return(stale, nil)
		repo.On("Get", ctx, confirmedMeanwhile.ID()).Return(confirmedMeanwhile, nil)
		repo.On("Get", ctx, broken.ID()).Return(nil, errors.New("connection reset"))
		repo.On("Update", ctx, stale).Return(nil).Once()
		metrics.On("OrdersExpired", 1).Once()
		publisher.On("PublishOrderChanged", ctx, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
			return e.OrderID.IsEqual(stale.ID()) && e.Operation == ports.EventOperationExpire && e.State == order.Cancelled
		})).Return(nil).Once()

		handler := commands.NewExpirePendingOrdersCommandHandler(
			factory, locker, kernel.RandomIDGenerator{}, kernel.FixedClock(fixedNow), publisher, metrics, discardLogger(),
		)
		cmd, err := commands.NewExpirePendingOrdersCommand(ttl)
		require.NoError(t, err)

		expired, err := handler.Handle(ctx, cmd)

		assert.Equal(t, 1, expired)
		assert.EqualError(t, err, "connection reset")
		assert.Equal(t, order.Cancelled, stale.State())
		assert.Equal(t, order.Confirmed, confirmedMeanwhile.State())
		locker.AssertExpectations(t)
		metrics.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("should do nothing without candidates", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		factory, uow := newOrderUoW(repo)
		metrics := new(MockMetrics)

		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("ListPendingOrderedBefore", ctx, mock.Anything).Return([]kernel.UUID{}, nil)

		handler := commands.NewExpirePendingOrdersCommandHandler(
			factory, new(MockLocker), kernel.RandomIDGenerator{}, kernel.FixedClock(fixedNow), new(MockPublisher), metrics, discardLogger(),
		)
		cmd, err := commands.NewExpirePendingOrdersCommand(time.Minute)
		require.NoError(t, err)

		expired, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Zero(t, expired)
		metrics.AssertNotCalled(t, "OrdersExpired", mock.Anything)
	})
}
