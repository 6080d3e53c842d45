package commands

import (
	"errors"
	"strings"

	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"
	"aboshop/internal/pkg/guard"
)

var ErrRegisterCommandIsNotConstructed = errors.New(
	"RegisterCommand must be created via NewRegisterCommand constructor",
)

// RegisterCommand represents a new account registration in the
// identification step. Unlike login, registration is strict: a duplicate
// email fails instead of silently reusing the existing account.
type RegisterCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	salutation string
	firstName  string
	lastName   string
	email      string
	phone      string
	password   string

	guard guard.ConstructorGuard
}

// NewRegisterCommand creates a registration command. Salutation and
// phone are optional; name, email and password are required.
func NewRegisterCommand(sessionID kernel.UUID, salutation, firstName, lastName, email, phone, password string) (RegisterCommand, error) {
	cmd := RegisterCommand{
		salutation: salutation,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setName(firstName, lastName),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier.
func (c RegisterCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Salutation returns the optional form of address.
func (c RegisterCommand) Salutation() string {
	return c.salutation
}

// FirstName returns the first name.
func (c RegisterCommand) FirstName() string {
	return c.firstName
}

// LastName returns the last name.
func (c RegisterCommand) LastName() string {
	return c.lastName
}

// Email returns the account email.
func (c RegisterCommand) Email() string {
	return c.email
}

// Phone returns the optional phone number.
func (c RegisterCommand) Phone() string {
	return c.phone
}

func (c *RegisterCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *RegisterCommand) setName(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValueIsRequiredError("lastName")
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *RegisterCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
