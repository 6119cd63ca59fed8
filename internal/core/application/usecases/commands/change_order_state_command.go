package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand confirms, ships or cancels an order.
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	operation order.Operation

	guard guard.ConstructorGuard
}

// NewChangeOrderStateCommand requires an order id and a known operation.
func NewChangeOrderStateCommand(orderID kernel.UUID, operation order.Operation) (ChangeOrderStateCommand, error) {
	cmd := ChangeOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOperation(operation),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built by NewChangeOrderStateCommand.
func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c ChangeOrderStateCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Operation returns the requested transition.
func (c ChangeOrderStateCommand) Operation() order.Operation {
	return c.operation
}

func (c *ChangeOrderStateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStateCommand) setOperation(operation order.Operation) error {
	if err := operation.Validate(); err != nil {
		return err
	}
	c.operation = operation
	return nil
}
