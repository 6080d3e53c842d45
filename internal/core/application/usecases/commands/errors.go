package commands

import "errors"

var (
	// ErrValidationFailed is returned when a step submission fails form
	// validation. The offending fields are recorded on the draft as
	// inline field errors; the draft keeps the entered values for
	// correction.
	ErrValidationFailed = errors.New("checkout validation failed")

	// ErrEmailAlreadyRegistered is returned by registration when an
	// account already exists for the email.
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
)
