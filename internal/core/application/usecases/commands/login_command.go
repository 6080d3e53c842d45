package commands

import (
	"errors"
	"strings"

	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"
	"aboshop/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a login attempt in the identification step.
// There is no real credential check: an unknown email transparently gets
// a demo identity created, a known email is attached as-is.
type LoginCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	email     string
	password  string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command. Validates that the session ID
// is valid, the email looks like an address and the password is present.
func NewLoginCommand(sessionID kernel.UUID, email, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier.
func (c LoginCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Email returns the login email.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the submitted password.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *LoginCommand) setEmail(email string) error {
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

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
