package commands_test

import (
	"errors"
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderHandler(
	factory commands.OrderUoWFactory,
	publisher *MockPublisher,
	metrics *MockMetrics,
) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		factory, kernel.RandomIDGenerator{}, kernel.FixedClock(fixedNow), publisher, metrics, discardLogger(),
	)
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should persist a pending order and publish", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateOrderCommand("c1", "USD", "2024-05-31")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		factory, uow := newOrderUoW(repo)
		publisher := new(MockPublisher)
		metrics := new(MockMetrics)

		var stored *order.Order
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
		uow.On("Rollback", ctx).Return(nil)
		metrics.On("OrderCreated").Once()
		publisher.On("PublishOrderChanged", ctx, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
			return e.Operation == ports.EventOperationCreate && e.State == order.Pending && e.Total.IsZero()
		})).Return(nil).Once()

		id, err := newCreateOrderHandler(factory, publisher, metrics).Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, id.IsEqual(stored.ID()))
		assert.Equal(t, order.Pending, stored.State())
		assert.Equal(t, "2024-05-31T00:00:00.000Z", stored.OrderedAt().String())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		publisher.AssertExpectations(t)
		metrics.AssertExpectations(t)
	})

	t.Run("should default ordered at to now", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateOrderCommand("c1", "EUR", "")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		factory, uow := newOrderUoW(repo)
		publisher := new(MockPublisher)
		metrics := new(MockMetrics)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.OrderedAt().Time().Equal(fixedNow) && o.Currency().Code() == "EUR"
		})).Return(nil).Once()
		metrics.On("OrderCreated")
		publisher.On("PublishOrderChanged", ctx, mock.Anything).Return(nil)

		_, err = newCreateOrderHandler(factory, publisher, metrics).Handle(ctx, cmd)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("should reject a future order time before touching storage", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("c1", "USD", "2024-06-01T10:00:01Z")
		require.NoError(t, err)
		factory := new(MockOrderUoWFactory)

		_, err = newCreateOrderHandler(factory, new(MockPublisher), new(MockMetrics)).Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, kernel.ErrFutureDate)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should keep the order when publishing fails", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateOrderCommand("c1", "USD", "")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		factory, uow := newOrderUoW(repo)
		publisher := new(MockPublisher)
		metrics := new(MockMetrics)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("Add", ctx, mock.Anything).Return(nil)
		metrics.On("OrderCreated")
		publisher.On("PublishOrderChanged", ctx, mock.Anything).Return(errors.New("broker down"))

		id, err := newCreateOrderHandler(factory, publisher, metrics).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.NoError(t, id.Validate())
	})

	t.Run("should surface storage errors without publishing", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateOrderCommand("c1", "USD", "")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		factory, uow := newOrderUoW(repo)
		publisher := new(MockPublisher)
		metrics := new(MockMetrics)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Add", ctx, mock.Anything).Return(errors.New("insert failed"))

		_, err = newCreateOrderHandler(factory, publisher, metrics).Handle(ctx, cmd)

		require.EqualError(t, err, "insert failed")
		uow.AssertNotCalled(t, "Commit", ctx)
		publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
		metrics.AssertNotCalled(t, "OrderCreated")
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		_, err := newCreateOrderHandler(new(MockOrderUoWFactory), nil, nil).Handle(t.Context(), commands.CreateOrderCommand{})
		assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
