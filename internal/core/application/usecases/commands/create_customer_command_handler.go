package commands

import (
	"context"

	"sales/internal/core/domain/model/customer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
)

// CreateCustomerCommandHandler registers customers.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	ids        kernel.IDGenerator
	metrics    ports.SalesMetrics
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewCreateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	ids kernel.IDGenerator,
	metrics ports.SalesMetrics,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		metrics:    metrics,
	}
}

// Handle returns the id of the new customer.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := customer.NewCustomer(h.ids, cmd.Name())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.metrics.CustomerCreated()
	return aggregate.ID(), nil
}
