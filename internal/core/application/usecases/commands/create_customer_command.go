package commands

import (
	"errors"

	"sales/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer. Name rules live in the customer aggregate.
type CreateCustomerCommand struct {
	name string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand wraps a customer name. Name rules belong to the
// customer aggregate.
func NewCreateCustomerCommand(name string) CreateCustomerCommand {
	return CreateCustomerCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate reports whether the command was built by NewCreateCustomerCommand.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the requested customer name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}
