// Package errs provides the error taxonomy shared by the kitchen service.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) for errors.Is
//   - a struct type carrying the details, for errors.As
//   - NewX and NewXWithCause constructors
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The kinds map onto the service's failure classes:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - not found: ObjectNotFoundError
//   - illegal state change: InvalidTransitionError
//   - uniqueness or race loss: ConflictError
//
// Inbound adapters classify errors only through the sentinels, so domain code
// is free to wrap or join them.
package errs
