package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
)

// CustomerView is the read model of a customer. LastOrderPrice is nil when the
// customer has not been charged yet.
type CustomerView struct {
	ID             kernel.UUID
	Name           string
	LastOrderPrice *kernel.Money
}

// GetCustomerQueryHandler reads customers through the repository.
type GetCustomerQueryHandler struct {
	customers ports.CustomerRepository
}

// NewGetCustomerQueryHandler creates a handler for customer lookups.
// Requires a CustomerRepository.
func NewGetCustomerQueryHandler(customers ports.CustomerRepository) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

// Handle returns the customer view or an ObjectNotFoundError.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	c, err := h.customers.Get(ctx, query.CustomerID())
	if err != nil {
		return CustomerView{}, err
	}

	view := CustomerView{ID: c.ID(), Name: c.Name()}
	if price, ok := c.LastOrderPrice(); ok {
		view.LastOrderPrice = &price
	}
	return view, nil
}
