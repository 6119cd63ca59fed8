package kernel

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyCodeLength is the length of an ISO-4217 alphabetic code.
const currencyCodeLength = 3

// DefaultLocale is used by the formatting methods when called with language.Und.
var DefaultLocale = language.AmericanEnglish

var (
	// ErrInvalidCurrencyCode is the cause carried when a code is not exactly 3 uppercase letters.
	ErrInvalidCurrencyCode = errors.New("currency code must be exactly 3 uppercase letters")
	// ErrCurrencyIsNotConstructed is returned when validating a zero-value Currency.
	ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError("Currency must be created via NewCurrency")
)

// Currency identifies a monetary unit by its 3-letter code. It is used as the equality
// key of Money and as the delegate that renders amounts for a locale.
type Currency struct {
	code  string
	guard guard.ConstructorGuard
}

// NewCurrency validates code and returns the Currency. Codes are not normalised:
// "usd" is rejected rather than upper-cased.
func NewCurrency(code string) (Currency, error) {
	if !isCurrencyCode(code) {
		return Currency{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, code),
		)
	}

	return Currency{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewCurrency is NewCurrency for codes known to be valid at compile time.
func MustNewCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the 3-letter code.
func (c Currency) Code() string {
	return c.code
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return c.code
}

// IsEqual compares currencies by code.
func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

// Validate returns ErrCurrencyIsNotConstructed for a zero value.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// FormatAmount renders amount with exactly two fraction digits, grouped and punctuated
// per locale, preceded by the locale's symbol for this currency. Codes unknown to the
// CLDR data fall back to the code itself as the symbol.
//
// Example:
//
//	usd := kernel.MustNewCurrency("USD")
//	usd.FormatAmount(decimal.RequireFromString("1234.5"), language.AmericanEnglish) // "$ 1,234.50"
//	usd.FormatAmount(decimal.RequireFromString("1234.5"), language.German)          // "$ 1.234,50"
func (c Currency) FormatAmount(amount decimal.Decimal, locale language.Tag) string {
	if locale == language.Und {
		locale = DefaultLocale
	}
	p := message.NewPrinter(locale)

	symbol := c.code
	if unit, err := currency.ParseISO(c.code); err == nil {
		symbol = p.Sprint(currency.Symbol(unit))
	}

	return symbol + " " + formatFixed2(p, amount)
}

// wholeChunk is the largest power of ten below math.MaxInt64.
var wholeChunk = big.NewInt(1_000_000_000_000_000_000)

// formatFixed2 prints amount rounded to two places without a float conversion:
// the integer part is printed from exact int64 chunks and the fraction from whole
// cents, both through the locale's printer.
func formatFixed2(p *message.Printer, amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()

	// "0.50" in the locale's digits and decimal separator, minus the leading zero.
	fraction := strings.TrimPrefix(
		p.Sprint(number.Decimal(float64(cents)/100, number.Scale(2))),
		p.Sprint(number.Decimal(0)),
	)

	return sign + formatWhole(p, whole.BigInt()) + fraction
}

func formatWhole(p *message.Printer, whole *big.Int) string {
	if whole.IsInt64() {
		return p.Sprint(number.Decimal(whole.Int64()))
	}

	high, low := new(big.Int).QuoRem(whole, wholeChunk, new(big.Int))
	lowDigits := p.Sprint(number.Decimal(low.Int64(), number.MinIntegerDigits(18)))
	return formatWhole(p, high) + groupSeparator(p) + lowDigits
}

// groupSeparator extracts the locale's thousands separator from a formatted million.
func groupSeparator(p *message.Printer) string {
	million := strings.TrimPrefix(p.Sprint(number.Decimal(1_000_000)), p.Sprint(number.Decimal(1)))
	zeros := p.Sprint(number.Decimal(0, number.MinIntegerDigits(3)))
	if i := strings.Index(million, zeros); i > 0 {
		return million[:i]
	}
	return ""
}

func isCurrencyCode(code string) bool {
	if len(code) != currencyCodeLength {
		return false
	}
	for i := range len(code) {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
