package commands

import (
	"context"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/ports"
)

// SetBillingAddressCommandHandler handles the billing step. Derives or
// merges the billing address, validates it and advances to payment.
type SetBillingAddressCommandHandler struct {
	drafts ports.DraftRegistry
}

// NewSetBillingAddressCommandHandler creates a handler for the billing step.
func NewSetBillingAddressCommandHandler(drafts ports.DraftRegistry) SetBillingAddressCommandHandler {
	return SetBillingAddressCommandHandler{
		drafts: drafts,
	}
}

// Handle processes the billing step submission. A validation failure on
// an independently owned billing address records inline field errors and
// returns ErrValidationFailed; derived addresses are valid by
// construction.
func (h *SetBillingAddressCommandHandler) Handle(ctx context.Context, cmd SetBillingAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, release, err := h.drafts.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	defer release()

	draft.ClearLastError()

	if cmd.SameAsDelivery() {
		draft.CopyBillingFromDelivery()
		draft.EnterStep(checkout.StepPayment)
		return nil
	}

	draft.ApplyBillingAddress(cmd.Patch())

	billing := draft.BillingAddress()
	if !h.validateBilling(draft, billing) {
		return ErrValidationFailed
	}

	draft.EnterStep(checkout.StepPayment)
	return nil
}

// validateBilling records inline errors for an incomplete billing
// address under "billing."-prefixed field keys.
func (h *SetBillingAddressCommandHandler) validateBilling(draft *checkout.Draft, billing checkout.BillingAddress) bool {
	valid := true

	if billing.FirstName == "" {
		draft.SetFieldError("billing.firstName", "first name is required")
		valid = false
	}
	if billing.LastName == "" {
		draft.SetFieldError("billing.lastName", "last name is required")
		valid = false
	}
	if billing.Street == "" {
		draft.SetFieldError("billing.street", "street is required")
		valid = false
	}
	if billing.HouseNumber == "" {
		draft.SetFieldError("billing.houseNumber", "house number is required")
		valid = false
	}
	if !billing.HasPostalCode() {
		draft.SetFieldError("billing.plz", "enter a valid 5-digit postal code")
		valid = false
	}
	if billing.City == "" {
		draft.SetFieldError("billing.city", "city is required")
		valid = false
	}

	return valid
}
