package ports

import (
	"context"

	"sales/internal/core/domain/model/customer"
	"sales/internal/core/domain/model/kernel"
)

// CustomerRepository persists customer aggregates.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get yields an errs.ObjectNotFoundError when no customer has the id.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
