package errs_test

import (
	"errors"
	"testing"

	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "123")

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, []error{errs.ErrObjectNotFound}, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderID", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderID, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, []error{errs.ErrObjectNotFound, cause}, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerID", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount")

		assert.Equal(t, "amount", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: amount", err.Error())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("amount must not be negative")
		err := errs.NewValueIsInvalidErrorWithCause("amount", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: amount (cause: amount must not be negative)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 120)

		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 120, err.Max)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 120", err.Error())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerID")

		assert.Equal(t, "value is required: customerID", err.Error())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("customer id is missing")
		err := errs.NewValueIsRequiredErrorWithCause("customerID", cause)

		assert.Equal(t, "value is required: customerID (cause: customer id is missing)", err.Error())
	})
}

func TestStateTransitionIsInvalidError(t *testing.T) {
	t.Run("message names the operation and the current state", func(t *testing.T) {
		err := errs.NewStateTransitionIsInvalidError("ship", "PENDING")

		assert.Equal(t, "ship", err.Operation)
		assert.Equal(t, "PENDING", err.State)
		assert.Equal(t, "state transition is invalid: cannot ship in PENDING state", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("invalid state transition")
		err := errs.NewStateTransitionIsInvalidErrorWithCause("confirm", "CANCELLED", cause)

		assert.Equal(t,
			"state transition is invalid: cannot confirm in CANCELLED state (cause: invalid state transition)",
			err.Error())
		require.ErrorIs(t, err, cause)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "state transition is invalid", errs.ErrStateTransitionIsInvalid.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is matches the category", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderID", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("amount"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("age", 150, 0, 120), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewStateTransitionIsInvalidError("ship", "PENDING"), errs.ErrStateTransitionIsInvalid)
	})

	t.Run("errors.Is matches the cause", func(t *testing.T) {
		kind := errors.New("invalid quantity")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", kind)

		require.ErrorIs(t, err, kind)
		require.NotErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("errors.As finds the typed error inside a join", func(t *testing.T) {
		joined := errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("amount"))

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, joined, &invalid)
		assert.Equal(t, "amount", invalid.ParamName)
	})
}
