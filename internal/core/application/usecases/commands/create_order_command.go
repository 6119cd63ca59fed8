package commands

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand opens a new PENDING order for a customer. An empty orderedAt
// means "now"; otherwise it is parsed by the handler against its clock.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("c1", "USD", "")
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	currency   kernel.Currency
	orderedAt  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer id and currency code and keeps
// the raw order date for the handler to parse. All field errors are joined.
func NewCreateOrderCommand(customerID, currencyCode, orderedAt string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderedAt: strings.TrimSpace(orderedAt),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCurrency(currencyCode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built by NewCreateOrderCommand.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the trimmed customer identifier.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Currency returns the order currency.
func (c CreateOrderCommand) Currency() kernel.Currency {
	return c.currency
}

// OrderedAt returns the raw order time, empty when the order is placed now.
func (c CreateOrderCommand) OrderedAt() string {
	return c.orderedAt
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredErrorWithCause("customerID", order.ErrMissingCustomerID)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCurrency(code string) error {
	currency, err := kernel.NewCurrency(code)
	if err != nil {
		return err
	}
	c.currency = currency
	return nil
}
