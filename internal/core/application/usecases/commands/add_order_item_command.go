package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand appends a line to an existing order. Product, quantity and
// price rules belong to the order aggregate and are enforced there.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID string
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand requires an order id. Product, quantity and price
// rules are checked by the order aggregate.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	productID string,
	quantity int,
	unitPrice decimal.Decimal,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built by NewAddOrderItemCommand.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the raw product identifier.
func (c AddOrderItemCommand) ProductID() string {
	return c.productID
}

// Quantity returns the requested quantity.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the price per unit in the order currency.
func (c AddOrderItemCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}
