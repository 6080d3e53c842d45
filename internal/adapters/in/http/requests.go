package http

import (
	"time"

	"aboshop/internal/core/domain/model/checkout"
)

// Request bodies are partial by design: every step accepts the fields
// the customer has typed so far, and the draft merges them. Structural
// checks (formats, lengths) run here via validator tags; business rules
// (required fields, eligibility, dates) are enforced by the commands and
// surface as field errors in the checkout state.

// AddressRequest carries the delivery address fields of step 1.
type AddressRequest struct {
	Street      *string `json:"street" validate:"omitempty,max=100"`
	HouseNumber *string `json:"houseNumber" validate:"omitempty,max=10"`
	Street2     *string `json:"street2" validate:"omitempty,max=100"`
	PLZ         *string `json:"plz" validate:"omitempty,max=5"`
	City        *string `json:"city" validate:"omitempty,max=60"`
	Country     *string `json:"country" validate:"omitempty,max=60"`
}

func (r AddressRequest) toPatch() checkout.AddressPatch {
	return checkout.AddressPatch{
		Street:      r.Street,
		HouseNumber: r.HouseNumber,
		Street2:     r.Street2,
		PostalCode:  r.PLZ,
		City:        r.City,
		Country:     r.Country,
	}
}

// ConfigurationRequest carries the subscription choices of step 2.
// StartDate uses the 2006-01-02 wire format.
type ConfigurationRequest struct {
	VariantID     *int    `json:"variantId" validate:"omitempty,min=0"`
	Cadence       *string `json:"cadence" validate:"omitempty,max=20"`
	Interval      *string `json:"interval" validate:"omitempty,max=20"`
	StartDate     *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	DeliveryNotes *string `json:"deliveryNotes" validate:"omitempty,max=500"`
}

func (r ConfigurationRequest) toPatch() (checkout.ConfigurationPatch, error) {
	patch := checkout.ConfigurationPatch{
		VariantID:     r.VariantID,
		DeliveryNotes: r.DeliveryNotes,
	}

	if r.Cadence != nil {
		cadence, err := checkout.ParseCadence(*r.Cadence)
		if err != nil {
			return checkout.ConfigurationPatch{}, err
		}
		patch.Cadence = &cadence
	}
	if r.Interval != nil {
		interval, err := checkout.ParseBillingInterval(*r.Interval)
		if err != nil {
			return checkout.ConfigurationPatch{}, err
		}
		patch.Interval = &interval
	}
	if r.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *r.StartDate)
		if err != nil {
			return checkout.ConfigurationPatch{}, err
		}
		patch.StartDate = &startDate
	}

	return patch, nil
}

// LoginRequest carries the credentials of the step 3 login path.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterRequest carries the new-account fields of the step 3 register path.
type RegisterRequest struct {
	Salutation string `json:"salutation" validate:"omitempty,max=20"`
	FirstName  string `json:"firstName" validate:"required,max=60"`
	LastName   string `json:"lastName" validate:"required,max=60"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Password   string `json:"password" validate:"required,min=6"`
}

// BillingRequest carries the billing address fields of step 4.
type BillingRequest struct {
	SameAsDelivery bool    `json:"sameAsDelivery"`
	Salutation     *string `json:"salutation" validate:"omitempty,max=20"`
	FirstName      *string `json:"firstName" validate:"omitempty,max=60"`
	LastName       *string `json:"lastName" validate:"omitempty,max=60"`
	CompanyName    *string `json:"companyName" validate:"omitempty,max=100"`
	Street         *string `json:"street" validate:"omitempty,max=100"`
	HouseNumber    *string `json:"houseNumber" validate:"omitempty,max=10"`
	Street2        *string `json:"street2" validate:"omitempty,max=100"`
	PLZ            *string `json:"plz" validate:"omitempty,max=5"`
	City           *string `json:"city" validate:"omitempty,max=60"`
	Country        *string `json:"country" validate:"omitempty,max=60"`
}

func (r BillingRequest) toPatch() checkout.BillingAddressPatch {
	return checkout.BillingAddressPatch{
		AddressPatch: checkout.AddressPatch{
			Street:      r.Street,
			HouseNumber: r.HouseNumber,
			Street2:     r.Street2,
			PostalCode:  r.PLZ,
			City:        r.City,
			Country:     r.Country,
		},
		Salutation:  r.Salutation,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		CompanyName: r.CompanyName,
	}
}

// PaymentRequest carries the payment selection of step 5.
type PaymentRequest struct {
	Method        *string `json:"method" validate:"omitempty,max=20"`
	IBAN          *string `json:"iban" validate:"omitempty,max=42"`
	BIC           *string `json:"bic" validate:"omitempty,max=11"`
	AccountHolder *string `json:"accountHolder" validate:"omitempty,max=100"`
}

func (r PaymentRequest) toPatch() (checkout.PaymentPatch, error) {
	patch := checkout.PaymentPatch{
		IBAN:          r.IBAN,
		BIC:           r.BIC,
		AccountHolder: r.AccountHolder,
	}

	if r.Method != nil {
		method, err := checkout.ParsePaymentMethod(*r.Method)
		if err != nil {
			return checkout.PaymentPatch{}, err
		}
		patch.Method = &method
	}

	return patch, nil
}

// OrderRequest carries the consent flags accompanying order submission.
type OrderRequest struct {
	TermsAccepted   *bool `json:"termsAccepted"`
	PrivacyAccepted *bool `json:"privacyAccepted"`
	Newsletter      *bool `json:"newsletter"`
}

func (r OrderRequest) toPatch() checkout.ConsentsPatch {
	return checkout.ConsentsPatch{
		TermsAccepted:   r.TermsAccepted,
		PrivacyAccepted: r.PrivacyAccepted,
		Newsletter:      r.Newsletter,
	}
}

// NavigateRequest names the wizard step the customer wants to open.
type NavigateRequest struct {
	Step int `json:"step" validate:"required,min=1,max=7"`
}
