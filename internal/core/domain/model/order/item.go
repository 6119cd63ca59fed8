package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity is the cause carried when a quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	// ErrItemIsNotConstructed is returned when validating a zero-value Item.
	ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via Order.AddItem or NewItem")
)

// Item is one line of an order. It is immutable and only meaningful inside the
// Order that created it; orderID is a back-reference, not ownership.
type Item struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.ProductID
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewItem builds a line item. Only the identifiers and the quantity are checked
// here; product and price are validated by Order.AddItem before it calls NewItem.
// Persistence adapters also use it to rehydrate stored lines.
func NewItem(id, orderID kernel.UUID, productID kernel.ProductID, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		productID:     productID,
		unitPrice:     unitPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the order the item belongs to.
func (i Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the ordered product.
func (i Item) ProductID() kernel.ProductID {
	return i.productID
}

// Quantity returns the number of units, always at least one.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of one unit in the order currency.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Validate returns ErrItemIsNotConstructed for a zero value.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// CalculateItemTotal returns unit price × quantity in the unit price's currency.
func (i Item) CalculateItemTotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.Multiply(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity),
		)
	}
	i.quantity = quantity
	return nil
}
