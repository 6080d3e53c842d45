package commands

import (
	"context"
	"strings"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/ports"
)

// SelectPaymentCommandHandler handles the payment step. Merges the
// selection, validates it and advances to review. Bank details are
// normalized on merge; the IBAN check is structural, not a checksum.
type SelectPaymentCommandHandler struct {
	drafts ports.DraftRegistry
}

// NewSelectPaymentCommandHandler creates a handler for the payment step.
func NewSelectPaymentCommandHandler(drafts ports.DraftRegistry) SelectPaymentCommandHandler {
	return SelectPaymentCommandHandler{
		drafts: drafts,
	}
}

// Handle processes the payment step submission. A validation failure
// records inline field errors and returns ErrValidationFailed.
func (h *SelectPaymentCommandHandler) Handle(ctx context.Context, cmd SelectPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, release, err := h.drafts.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	defer release()

	draft.ClearLastError()
	draft.ApplyPayment(cmd.Patch())

	payment := draft.Payment()
	if !h.validatePayment(draft, payment) {
		return ErrValidationFailed
	}

	draft.EnterStep(checkout.StepReview)
	return nil
}

// validatePayment records inline errors for an unsubmittable payment
// selection. BIC stays optional.
func (h *SelectPaymentCommandHandler) validatePayment(draft *checkout.Draft, payment checkout.Payment) bool {
	if payment.Method.Validate() != nil {
		draft.SetFieldError("paymentMethod", "choose a payment method")
		return false
	}

	if payment.Method != checkout.PaymentDirectDebit {
		return true
	}

	valid := true
	if strings.TrimSpace(payment.AccountHolder) == "" {
		draft.SetFieldError("accountHolder", "account holder is required for direct debit")
		valid = false
	}
	if !checkout.ValidIBAN(payment.IBAN) {
		draft.SetFieldError("iban", "enter a valid IBAN")
		valid = false
	}

	return valid
}
