package checkout

import (
	"errors"
	"time"

	"aboshop/internal/core/domain/model/kernel"
)

// Submission precondition errors. Each names the field whose inline
// error should be surfaced; none of them leaves the draft modified.
var (
	ErrIdentityMissing    = errors.New("no customer identity attached")
	ErrTermsNotAccepted   = errors.New("terms and conditions must be accepted")
	ErrPrivacyNotAccepted = errors.New("privacy policy must be accepted")
)

// PreconditionError maps a failed submission precondition to the field
// it belongs to, so the error can be surfaced inline next to it.
type PreconditionError struct {
	Field string
	Err   error
}

func (e *PreconditionError) Error() string {
	return e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Record is the immutable snapshot of a draft at submission time plus
// the server-assigned order identifier. It is never mutated after
// creation.
type Record struct {
	OrderID         kernel.UUID
	CustomerID      kernel.UUID
	CustomerEmail   string
	DeliveryAddress Address
	BillingAddress  BillingAddress
	Configuration   Configuration
	Quote           Quote
	Payment         Payment
	Newsletter      bool
	CreatedAt       time.Time
}

// AssembleRecord checks all submission preconditions against the draft
// and, if they hold, returns the immutable order record under the given
// server-assigned identifier. Any failing precondition blocks assembly
// with a PreconditionError naming the offending field; the draft is
// never partially submitted.
//
// Preconditions: identity attached, both consent flags true, payment
// selection valid (for direct debit a structurally valid IBAN).
func (d *Draft) AssembleRecord(orderID kernel.UUID, now time.Time) (*Record, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	if d.customer == nil {
		return nil, &PreconditionError{Field: "customer", Err: ErrIdentityMissing}
	}
	if !d.consents.TermsAccepted {
		return nil, &PreconditionError{Field: "terms", Err: ErrTermsNotAccepted}
	}
	if !d.consents.PrivacyAccepted {
		return nil, &PreconditionError{Field: "privacy", Err: ErrPrivacyNotAccepted}
	}
	if err := d.payment.Validate(); err != nil {
		return nil, &PreconditionError{Field: "payment", Err: err}
	}

	return &Record{
		OrderID:         orderID,
		CustomerID:      d.customer.ID(),
		CustomerEmail:   d.customer.Email(),
		DeliveryAddress: d.deliveryAddress,
		BillingAddress:  d.billingAddress,
		Configuration:   d.configuration,
		Quote:           d.quote,
		Payment:         d.payment,
		Newsletter:      d.consents.Newsletter,
		CreatedAt:       now,
	}, nil
}
