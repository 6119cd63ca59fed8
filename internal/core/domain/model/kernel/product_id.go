package kernel

import (
	"strings"

	"sales/internal/pkg/errs"
)

// ErrProductIDIsRequired is returned for a blank supplied product id.
var ErrProductIDIsRequired = errs.NewValueIsRequiredError("productID")

// ProductID references a product by an opaque token. It is compared by value.
type ProductID struct {
	id string
}

// NewProductID generates a fresh product id from ids.
func NewProductID(ids IDGenerator) ProductID {
	return ProductID{id: ids.NewID().String()}
}

// ProductIDFromString wraps a supplied token. Blank tokens are rejected.
func ProductIDFromString(id string) (ProductID, error) {
	if strings.TrimSpace(id) == "" {
		return ProductID{}, ErrProductIDIsRequired
	}
	return ProductID{id: id}, nil
}

// IsEqual compares product ids by value.
func (p ProductID) IsEqual(other ProductID) bool {
	return p.id == other.id
}

// String returns the token.
func (p ProductID) String() string {
	return p.id
}

// Validate rejects the zero value.
func (p ProductID) Validate() error {
	if p.id == "" {
		return ErrProductIDIsRequired
	}
	return nil
}
