// Package errs provides standardized error types for the sales application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the domain, application, and adapter layers.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - StateTransitionIsInvalidError: For when a lifecycle operation is not allowed in the current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) naming the category
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method exposing both the category sentinel and the cause
//
// Domain packages define their own sentinels (kernel.ErrInvalidAmount, order.ErrInvalidQuantity, ...)
// and pass them as the cause, so callers can match either the category or the precise kind:
//
//	err := errs.NewValueIsInvalidErrorWithCause("quantity", order.ErrInvalidQuantity)
//	errors.Is(err, errs.ErrValueIsInvalid)   // true
//	errors.Is(err, order.ErrInvalidQuantity) // true
package errs
