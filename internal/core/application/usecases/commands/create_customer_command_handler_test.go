package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/customer"
	"sales/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("should store a new customer", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockCustomerRepository)
		uow := &MockCustomerUoW{repo: repo}
		factory := new(MockCustomerUoWFactory)
		metrics := new(MockMetrics)

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Add", ctx, mock.MatchedBy(func(c *customer.Customer) bool { return c.Name() == "Ada" })).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		metrics.On("CustomerCreated").Once()

		handler := commands.NewCreateCustomerCommandHandler(factory, kernel.RandomIDGenerator{}, metrics)
		id, err := handler.Handle(ctx, commands.NewCreateCustomerCommand("Ada"))

		require.NoError(t, err)
		assert.NoError(t, id.Validate())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		metrics.AssertExpectations(t)
	})

	t.Run("should reject a blank name without a transaction", func(t *testing.T) {
		factory := new(MockCustomerUoWFactory)
		handler := commands.NewCreateCustomerCommandHandler(factory, kernel.RandomIDGenerator{}, new(MockMetrics))

		_, err := handler.Handle(t.Context(), commands.NewCreateCustomerCommand("   "))

		assert.ErrorIs(t, err, customer.ErrEmptyCustomerName)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		handler := commands.NewCreateCustomerCommandHandler(new(MockCustomerUoWFactory), kernel.RandomIDGenerator{}, nil)
		_, err := handler.Handle(t.Context(), commands.CreateCustomerCommand{})
		assert.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
	})
}
