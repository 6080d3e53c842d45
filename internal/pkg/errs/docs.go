// Package errs defines the error types shared by the domain and
// application layers.
//
// Each validation failure has a sentinel (ErrValueIsRequired,
// ErrValueIsInvalid, ErrValueIsOutOfRange, ErrObjectNotFound) plus a
// struct carrying the offending parameter, with constructors in two
// flavors: plain and WithCause. Unwrap on every struct returns the
// sentinel, so callers classify with errors.Is and inspect details with
// errors.As.
//
// Domain constructors attach the field name being validated; adapters
// attach the underlying storage or transport error as the cause.
package errs
