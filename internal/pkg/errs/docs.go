// Package errs defines the error taxonomy shared by the domain and
// application layers.
//
// Every failure category gets the same treatment: a sentinel variable
// (ErrValueIsRequired, ErrObjectNotFound, ...), a struct carrying the
// offending parameter name and an optional cause, constructors with and
// without a cause, and an Unwrap chain so callers can test with errors.Is
// against the sentinel regardless of how the error was built.
//
// Handlers at the HTTP boundary rely on these sentinels to pick status
// codes, so domain code should always return one of these types for
// validation and lookup failures rather than ad-hoc errors.
package errs
