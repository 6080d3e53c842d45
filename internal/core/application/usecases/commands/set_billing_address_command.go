package commands

import (
	"errors"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/guard"
)

var ErrSetBillingAddressCommandIsNotConstructed = errors.New(
	"SetBillingAddressCommand must be created via NewSetBillingAddressCommand constructor",
)

// SetBillingAddressCommand represents a submission of the billing step.
// When SameAsDelivery is requested the whole billing address is derived
// from the delivery address and the attached identity; otherwise the
// supplied partial billing address is merged.
type SetBillingAddressCommand struct { //nolint:recvcheck //using for validation
	sessionID      kernel.UUID
	sameAsDelivery bool
	patch          checkout.BillingAddressPatch

	guard guard.ConstructorGuard
}

// NewSetBillingAddressCommand creates a command to submit the billing
// step. The patch is ignored when sameAsDelivery is set.
func NewSetBillingAddressCommand(sessionID kernel.UUID, sameAsDelivery bool, patch checkout.BillingAddressPatch) (SetBillingAddressCommand, error) {
	cmd := SetBillingAddressCommand{
		sameAsDelivery: sameAsDelivery,
		patch:          patch,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return SetBillingAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetBillingAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetBillingAddressCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier.
func (c SetBillingAddressCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SameAsDelivery reports whether the billing address should be derived
// from the delivery address.
func (c SetBillingAddressCommand) SameAsDelivery() bool {
	return c.sameAsDelivery
}

// Patch returns the partial billing address to merge.
func (c SetBillingAddressCommand) Patch() checkout.BillingAddressPatch {
	return c.patch
}

func (c *SetBillingAddressCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
