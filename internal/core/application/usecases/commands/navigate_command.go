package commands

import (
	"errors"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/guard"
)

var ErrNavigateCommandIsNotConstructed = errors.New(
	"NavigateCommand must be created via NewNavigateCommand constructor",
)

// NavigateCommand represents a request to move the checkout to another
// step. Entry guards may resolve the request to a different step; the
// resulting position is read back from the draft.
type NavigateCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	target    checkout.Step

	guard guard.ConstructorGuard
}

// NewNavigateCommand creates a command to navigate to a workflow step.
// Validates that the session ID is valid and the target is one of the
// seven workflow positions.
func NewNavigateCommand(sessionID kernel.UUID, target checkout.Step) (NavigateCommand, error) {
	cmd := NavigateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setTarget(target),
	); err != nil {
		return NavigateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NavigateCommand) Validate() error {
	return c.guard.Validate(ErrNavigateCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier.
func (c NavigateCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Target returns the requested workflow step.
func (c NavigateCommand) Target() checkout.Step {
	return c.target
}

func (c *NavigateCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *NavigateCommand) setTarget(target checkout.Step) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
