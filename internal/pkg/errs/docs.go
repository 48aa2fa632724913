// Package errs provides standardized error types for the order tracking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the full error taxonomy of the service:
//   - ValueIsRequiredError: a status-specific required field is absent
//   - ValueIsInvalidError / ValueIsOutOfRangeError: malformed or out-of-range data
//   - ObjectNotFoundError: no order matches the given id or token
//   - InvalidTransitionError: the requested status is unreachable from the current one
//   - ForbiddenError: the caller does not own the order
//   - ConflictError: a concurrent transition or token collision lost the race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict) for errors.Is classification
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// The transport layer maps sentinels to HTTP status codes in exactly one place,
// so use cases never deal in status codes themselves.
package errs
