package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery asks for one customer by id.
type GetCustomerQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

// NewGetCustomerQuery requires a customer id.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// CustomerID returns the requested customer.
func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Validate reports whether the query was built by NewGetCustomerQuery.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}
