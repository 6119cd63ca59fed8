package order

import (
	"errors"
	"fmt"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Unit prices are stored as numeric(20,4), so the aggregate refuses anything a
// round trip through storage would change.
const (
	MaxUnitPriceScale         = 4
	MaxUnitPriceIntegerDigits = 16
)

var maxUnitPrice = decimal.New(1, MaxUnitPriceIntegerDigits)

var (
	// ErrMissingCustomerID is the cause carried when the customer id is empty or blank.
	ErrMissingCustomerID = errors.New("customer id is required")
	// ErrInvalidProductID is the cause carried when an item is added without a product id.
	ErrInvalidProductID = errors.New("product id is required")
	// ErrInvalidUnitPrice is the cause carried when an item's unit price is not
	// positive or does not fit MaxUnitPriceScale and MaxUnitPriceIntegerDigits.
	ErrInvalidUnitPrice = errors.New("invalid unit price")
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the sales order aggregate root. It owns its items exclusively and
// enforces the lifecycle described in the package documentation.
//
// Invariants:
//   - customerID is non-blank
//   - currency is fixed at creation and every item is priced in it
//   - items are append-only and keep insertion order
//   - orderedAt was not in the future when it was captured
type Order struct {
	id         kernel.UUID
	customerID string
	currency   kernel.Currency
	orderedAt  kernel.DateTime
	state      State
	items      []Item

	isConstructed bool
}

// NewOrder creates a PENDING order with a fresh id from ids. The customer id is
// stored as supplied; only the emptiness check trims it. Callers that have no
// explicit order time pass kernel.NewDateTime(clock).
//
// Example:
//
//	o, err := order.NewOrder(ids, "c1", kernel.MustNewCurrency("USD"), kernel.NewDateTime(clock))
//	_, err = o.AddItem(ids, "p1", 2, decimal.RequireFromString("10.00"))
//	total, _ := o.CalculateTotalAmount() // 20.00 USD
func NewOrder(
	ids kernel.IDGenerator,
	customerID string,
	currency kernel.Currency,
	orderedAt kernel.DateTime,
) (*Order, error) {
	o := &Order{
		state:         Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(ids.NewID()),
		o.setCustomerID(customerID),
		o.setCurrency(currency),
		o.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates a stored order. Every field is re-validated and every
// item must reference this order and carry a positive price in its currency.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	currency kernel.Currency,
	orderedAt kernel.DateTime,
	state State,
	items []Item,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCurrency(currency),
		o.setOrderedAt(orderedAt),
		o.setState(state),
	); err != nil {
		return nil, err
	}
	if err := o.setItems(items); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate returns ErrOrderIsNotConstructed for nil or zero-value orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Currency returns the currency every item of the order is priced in.
func (o *Order) Currency() kernel.Currency {
	return o.currency
}

// OrderedAt returns when the order was placed.
func (o *Order) OrderedAt() kernel.DateTime {
	return o.orderedAt
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

// Items returns a copy of the item sequence in insertion order. Changing the
// returned slice does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a new line priced in the order's currency and returns it.
// The state is checked first (ErrInvalidOrderState), then product id, quantity
// and unit price are validated together. The unit price must be positive with
// at most MaxUnitPriceScale fraction digits and MaxUnitPriceIntegerDigits
// integer digits. Adding the same product twice creates
// two lines.
func (o *Order) AddItem(ids kernel.IDGenerator, productID string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if err := o.state.ValidateAddItem(); err != nil {
		return Item{}, err
	}

	product, productErr := kernel.ProductIDFromString(productID)
	if productErr != nil {
		productErr = errs.NewValueIsRequiredErrorWithCause("productID", ErrInvalidProductID)
	}
	var quantityErr, priceErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity))
	}
	if err := validateUnitPrice(unitPrice); err != nil {
		priceErr = errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
	}
	if err := errors.Join(productErr, quantityErr, priceErr); err != nil {
		return Item{}, err
	}

	price, err := kernel.NewMoney(unitPrice, o.currency)
	if err != nil {
		return Item{}, err
	}
	item, err := NewItem(ids.NewID(), o.id, product, quantity, price)
	if err != nil {
		return Item{}, err
	}

	o.items = append(o.items, item)
	return item, nil
}

// Confirm moves a PENDING order to CONFIRMED.
func (o *Order) Confirm() error {
	return o.Apply(OperationConfirm)
}

// Ship moves a CONFIRMED order to SHIPPED.
func (o *Order) Ship() error {
	return o.Apply(OperationShip)
}

// Cancel moves a PENDING or CONFIRMED order to CANCELLED.
func (o *Order) Cancel() error {
	return o.Apply(OperationCancel)
}

// Apply runs op against the transition table. On failure the state is unchanged.
func (o *Order) Apply(op Operation) error {
	next, err := o.state.Apply(op)
	if err != nil {
		return err
	}
	o.state = next
	return nil
}

// CalculateTotalAmount sums every item total into a zero amount in the order's
// currency. An order without items totals zero.
func (o *Order) CalculateTotalAmount() (kernel.Money, error) {
	total, err := kernel.ZeroMoney(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}
	for _, item := range o.items {
		subtotal, err := item.CalculateItemTotal()
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(subtotal); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredErrorWithCause("customerID", ErrMissingCustomerID)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

func (o *Order) setOrderedAt(orderedAt kernel.DateTime) error {
	if err := orderedAt.Validate(); err != nil {
		return err
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.state = state
	return nil
}

func (o *Order) setItems(items []Item) error {
	restored := make([]Item, 0, len(items))
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.OrderID().IsEqual(o.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %d belongs to order %s", idx, item.OrderID()),
			)
		}
		if !item.UnitPrice().Amount().IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %d: %w: got %s", idx, ErrInvalidUnitPrice, item.UnitPrice().Amount()),
			)
		}
		if !item.UnitPrice().Currency().IsEqual(o.currency) {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %d: %w", idx, kernel.ErrCurrencyMismatch),
			)
		}
		restored = append(restored, item)
	}
	o.items = restored
	return nil
}

func validateUnitPrice(unitPrice decimal.Decimal) error {
	switch {
	case !unitPrice.IsPositive():
		return fmt.Errorf("%w: must be greater than 0, got %s", ErrInvalidUnitPrice, unitPrice)
	case !unitPrice.Equal(unitPrice.Truncate(MaxUnitPriceScale)):
		return fmt.Errorf("%w: more than %d decimal places in %s", ErrInvalidUnitPrice, MaxUnitPriceScale, unitPrice)
	case unitPrice.GreaterThanOrEqual(maxUnitPrice):
		return fmt.Errorf("%w: more than %d integer digits in %s", ErrInvalidUnitPrice, MaxUnitPriceIntegerDigits, unitPrice)
	}
	return nil
}
