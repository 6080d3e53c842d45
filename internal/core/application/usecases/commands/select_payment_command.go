package commands

import (
	"errors"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/guard"
)

var ErrSelectPaymentCommandIsNotConstructed = errors.New(
	"SelectPaymentCommand must be created via NewSelectPaymentCommand constructor",
)

// SelectPaymentCommand represents a submission of the payment step:
// method selection plus bank details when paying by direct debit.
type SelectPaymentCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	patch     checkout.PaymentPatch

	guard guard.ConstructorGuard
}

// NewSelectPaymentCommand creates a command to submit the payment step.
func NewSelectPaymentCommand(sessionID kernel.UUID, patch checkout.PaymentPatch) (SelectPaymentCommand, error) {
	cmd := SelectPaymentCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return SelectPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSelectPaymentCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier.
func (c SelectPaymentCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Patch returns the partial payment selection to merge.
func (c SelectPaymentCommand) Patch() checkout.PaymentPatch {
	return c.patch
}

func (c *SelectPaymentCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
