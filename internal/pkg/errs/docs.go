// Package errs provides the error types shared by the dealership domain,
// application and adapter layers.
//
// Every type follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrInvalidTransition, ...) usable with errors.Is
//   - a struct carrying the details (parameter name, entity kind, from/to status)
//   - New...Error and New...ErrorWithCause constructors
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The HTTP adapter maps sentinels to status codes, so new error kinds must be
// registered there as well.
package errs
