package commands

import (
	"errors"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/guard"
)

var ErrSubmitDeliveryAddressCommandIsNotConstructed = errors.New(
	"SubmitDeliveryAddressCommand must be created via NewSubmitDeliveryAddressCommand constructor",
)

// SubmitDeliveryAddressCommand represents a submission of the delivery
// address form. It carries a partial address: only the supplied fields
// are merged into the draft, everything else persists.
//
// Example:
//
//	cmd, err := NewSubmitDeliveryAddressCommand(sessionID, checkout.AddressPatch{
//	    Street:      &street,
//	    HouseNumber: &houseNumber,
//	    PostalCode:  &plz,
//	    City:        &city,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid address submission: %w", err)
//	}
//
//	handler := NewSubmitDeliveryAddressCommandHandler(drafts, geo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("address step failed: %w", err)
//	}
type SubmitDeliveryAddressCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	patch     checkout.AddressPatch

	guard guard.ConstructorGuard
}

// NewSubmitDeliveryAddressCommand creates a command to submit the
// delivery address step. Validates that the session ID is valid; field
// completeness is checked against the merged draft by the handler.
func NewSubmitDeliveryAddressCommand(sessionID kernel.UUID, patch checkout.AddressPatch) (SubmitDeliveryAddressCommand, error) {
	cmd := SubmitDeliveryAddressCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return SubmitDeliveryAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDeliveryAddressCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryAddressCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier.
func (c SubmitDeliveryAddressCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Patch returns the partial address to merge.
func (c SubmitDeliveryAddressCommand) Patch() checkout.AddressPatch {
	return c.patch
}

func (c *SubmitDeliveryAddressCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
