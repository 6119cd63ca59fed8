package kernel_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func money(t *testing.T, amount, code string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(amount), kernel.MustNewCurrency(code))
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "0.01", "19.99", "1000000"} {
			m := money(t, amount, "USD")
			assert.True(t, m.Amount().Equal(decimal.RequireFromString(amount)))
			assert.Equal(t, "USD", m.Currency().Code())
			assert.NoError(t, m.Validate())
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"), kernel.MustNewCurrency("USD"))
		assert.ErrorIs(t, err, kernel.ErrInvalidAmount)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unconstructed currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), kernel.Currency{})
		assert.ErrorIs(t, err, kernel.ErrCurrencyIsNotConstructed)
	})

	t.Run("reports every invalid argument", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1), kernel.Currency{})
		assert.ErrorIs(t, err, kernel.ErrInvalidAmount)
		assert.ErrorIs(t, err, kernel.ErrCurrencyIsNotConstructed)
	})
}

func TestZeroMoney(t *testing.T) {
	m, err := kernel.ZeroMoney(kernel.MustNewCurrency("EUR"))
	require.NoError(t, err)
	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00 EUR", m.String())
}

func TestMoney_Add(t *testing.T) {
	t.Run("same currency", func(t *testing.T) {
		sum, err := money(t, "10.50", "USD").Add(money(t, "0.25", "USD"))
		require.NoError(t, err)
		assert.True(t, sum.IsEqual(money(t, "10.75", "USD")))
	})

	t.Run("operands are left untouched", func(t *testing.T) {
		a := money(t, "1", "USD")
		b := money(t, "2", "USD")
		_, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "1.00 USD", a.String())
		assert.Equal(t, "2.00 USD", b.String())
	})

	t.Run("currency mismatch", func(t *testing.T) {
		_, err := money(t, "10", "USD").Add(money(t, "10", "EUR"))
		assert.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
		assert.ErrorContains(t, err, "USD and EUR")
	})

	t.Run("unconstructed operand", func(t *testing.T) {
		_, err := money(t, "10", "USD").Add(kernel.Money{})
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoney_Multiply(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		factor string
		want   string
	}{
		{name: "integer factor", amount: "10.00", factor: "2", want: "20.00 USD"},
		{name: "fractional factor", amount: "9.99", factor: "3", want: "29.97 USD"},
		{name: "zero factor", amount: "9.99", factor: "0", want: "0.00 USD"},
		{name: "exact decimal", amount: "0.1", factor: "3", want: "0.30 USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money(t, tt.amount, "USD").Multiply(decimal.RequireFromString(tt.factor))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("negative factor", func(t *testing.T) {
		_, err := money(t, "10", "USD").Multiply(decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, kernel.ErrInvalidFactor)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	assert.True(t, money(t, "1.5", "USD").IsEqual(money(t, "1.50", "USD")))
	assert.False(t, money(t, "1.5", "USD").IsEqual(money(t, "1.5", "EUR")))
	assert.False(t, money(t, "1.5", "USD").IsEqual(money(t, "1.51", "USD")))
}

func TestMoney_Format(t *testing.T) {
	m := money(t, "20", "USD")

	assert.Equal(t, "20.00 USD", m.String())
	assert.Equal(t, "$ 20.00", m.Format(language.AmericanEnglish))
	assert.Equal(t, m.Format(language.AmericanEnglish), m.Format(language.Und))
}
