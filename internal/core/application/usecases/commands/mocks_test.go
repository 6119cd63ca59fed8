package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/customer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListPendingOrderedBefore(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	args := m.Called(ctx, cutoff)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockTx) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockTx) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockOrderUoW struct {
	MockTx
	repo ports.OrderRepository
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository { return m.repo }

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCustomerUoW struct {
	MockTx
	repo ports.CustomerRepository
}

func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository { return m.repo }

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockLocker struct{ mock.Mock }

func (m *MockLocker) Lock(ctx context.Context, id kernel.UUID) (ports.UnlockFunc, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return func(context.Context) error {
		return m.MethodCalled("Unlock", id).Error(0)
	}, nil
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) OrderCreated()                        { m.Called() }
func (m *MockMetrics) OrderItemAdded()                      { m.Called() }
func (m *MockMetrics) OrderTransitioned(op order.Operation) { m.Called(op) }
func (m *MockMetrics) CustomerCreated()                     { m.Called() }
func (m *MockMetrics) OrdersExpired(count int)              { m.Called(count) }

// newOrderUoW wires a factory that hands out a single unit of work backed by repo.
func newOrderUoW(repo *MockOrderRepository) (*MockOrderUoWFactory, *MockOrderUoW) {
	uow := &MockOrderUoW{repo: repo}
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow
}

// pendingOrder builds a stored-looking order in PENDING for customer c1.
func pendingOrder(orderedAt time.Time) *order.Order {
	o, err := order.NewOrder(
		kernel.RandomIDGenerator{},
		"c1",
		kernel.MustNewCurrency("USD"),
		kernel.NewDateTime(kernel.FixedClock(orderedAt)),
	)
	if err != nil {
		panic(err)
	}
	return o
}
