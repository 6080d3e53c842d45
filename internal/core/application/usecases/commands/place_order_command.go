package commands

import (
	"errors"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents the final submission from the review
// step. It carries the consent flags collected there; everything else is
// already accumulated on the draft.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	consents  checkout.ConsentsPatch

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to submit the order.
func NewPlaceOrderCommand(sessionID kernel.UUID, consents checkout.ConsentsPatch) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		consents: consents,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier.
func (c PlaceOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Consents returns the consent flags to merge before submission.
func (c PlaceOrderCommand) Consents() checkout.ConsentsPatch {
	return c.consents
}

func (c *PlaceOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
