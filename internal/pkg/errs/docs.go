// Package errs provides the error types used across the laundry service.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - a struct carrying the details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Validation failures use ValueIsRequiredError, ValueIsInvalidError and
// ValueIsOutOfRangeError. Lifecycle rule violations use InvalidTransitionError
// and ObjectIsProtectedError. Storage problems surface as ObjectNotFoundError,
// VersionIsInvalidError (optimistic concurrency) and PersistenceError.
package errs
