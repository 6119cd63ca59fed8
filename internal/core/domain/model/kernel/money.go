package kernel

import (
	"errors"
	"fmt"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidAmount is the cause carried when an amount is negative.
	ErrInvalidAmount = errors.New("amount must not be negative")
	// ErrCurrencyMismatch is the cause carried when operands are in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInvalidFactor is the cause carried when a multiplication factor is negative.
	ErrInvalidFactor = errors.New("factor must not be negative")
	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or ZeroMoney")
)

// Money is an immutable, non-negative amount in a single currency.
// Arithmetic is only defined between operands of the same currency and always
// returns a new instance.
//
// Example:
//
//	usd := kernel.MustNewCurrency("USD")
//	price, _ := kernel.NewMoney(decimal.RequireFromString("9.99"), usd)
//	subtotal, _ := price.Multiply(decimal.NewFromInt(3))
//	fmt.Println(subtotal) // 29.97 USD
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney validates amount (>= 0) and currency.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setAmount(amount),
		m.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return m, nil
}

// ZeroMoney returns a zero amount in currency.
func ZeroMoney(currency Currency) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amount (numerically, so 1.5 equals 1.50) and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency.IsEqual(other.currency) && m.amount.Equal(other.amount)
}

// Validate returns ErrMoneyIsNotConstructed for a zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns m + other. Both operands must share the currency code.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if !m.currency.IsEqual(other.currency) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency),
		)
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Multiply returns m × factor. A zero factor is allowed and yields a zero amount.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%w: %s", ErrInvalidFactor, factor),
		)
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// Format renders the amount for locale through the currency's formatter.
// language.Und selects DefaultLocale.
func (m Money) Format(locale language.Tag) string {
	return m.currency.FormatAmount(m.amount, locale)
}

// String returns the amount with two fixed decimals followed by the code, e.g. "19.99 USD".
func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency.Code()
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%w: %s", ErrInvalidAmount, amount),
		)
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	m.currency = currency
	return nil
}
