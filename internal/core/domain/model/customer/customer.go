// Package customer holds the customer aggregate. It is independent of the order
// aggregate; orders refer to customers only by id.
package customer

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

var (
	// ErrEmptyCustomerName is the cause carried when a name is empty or whitespace only.
	ErrEmptyCustomerName = errors.New("customer name must not be empty")
	// ErrCustomerIsNotConstructed is returned when a Customer was not created through a constructor.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")
)

// Customer is a counterparty of sales orders. The last order price starts absent
// and has no mutator in the domain; it is only ever restored from storage.
type Customer struct {
	id             kernel.UUID
	name           string
	lastOrderPrice *kernel.Money

	isConstructed bool
}

// NewCustomer creates a customer with a fresh id from ids and no last order price.
func NewCustomer(ids kernel.IDGenerator, name string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(ids.NewID()),
		c.setName(name),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCustomer rehydrates a stored customer. A nil lastOrderPrice means absent.
func RestoreCustomer(id kernel.UUID, name string, lastOrderPrice *kernel.Money) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setLastOrderPrice(lastOrderPrice),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns ErrCustomerIsNotConstructed for a nil or zero customer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the trimmed display name.
func (c *Customer) Name() string {
	return c.name
}

// LastOrderPrice returns the price of the customer's last order, if one was recorded.
func (c *Customer) LastOrderPrice() (kernel.Money, bool) {
	if c.lastOrderPrice == nil {
		return kernel.Money{}, false
	}
	return *c.lastOrderPrice, true
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredErrorWithCause("name", ErrEmptyCustomerName)
	}
	c.name = name
	return nil
}

func (c *Customer) setLastOrderPrice(price *kernel.Money) error {
	if price == nil {
		c.lastOrderPrice = nil
		return nil
	}
	if err := price.Validate(); err != nil {
		return err
	}
	p := *price
	c.lastOrderPrice = &p
	return nil
}
