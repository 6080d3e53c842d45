package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"aboshop/internal/pkg/errs"
)

// PaymentMethod is how the subscription is paid.
type PaymentMethod int

const (
	PaymentUnknown PaymentMethod = iota

	// PaymentInvoice pays by bank transfer against an invoice.
	PaymentInvoice

	// PaymentDirectDebit pays by SEPA direct debit and requires bank details.
	PaymentDirectDebit
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown:     "unknown",
		PaymentInvoice:     "invoice",
		PaymentDirectDebit: "directDebit",
	}
}

// ParsePaymentMethod converts the wire form ("invoice", "directDebit")
// to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for m, str := range getPaymentMethodStrings() {
		if str == s && m != PaymentUnknown {
			return m, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks the method is one of the accepted values.
func (m PaymentMethod) Validate() error {
	if m != PaymentInvoice && m != PaymentDirectDebit {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name, "unknown" for invalid values.
func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// ibanPattern is a structural check, not a checksum validation: country
// code, two check digits, 10 to 30 alphanumerics.
var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{10,30}$`)

// NormalizeIBAN strips whitespace and upper-cases, the canonical form
// used for validation and storage.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// ValidIBAN reports whether the input normalizes to a structurally valid
// IBAN.
func ValidIBAN(iban string) bool {
	return ibanPattern.MatchString(NormalizeIBAN(iban))
}

// Payment is the customer's payment selection. Bank details are only
// meaningful when Method is PaymentDirectDebit.
type Payment struct {
	Method        PaymentMethod
	IBAN          string
	BIC           string
	AccountHolder string
}

// Validate checks the selection is submittable: a valid method, and for
// direct debit a structurally valid IBAN plus an account holder name.
// BIC stays optional.
func (p Payment) Validate() error {
	if err := p.Method.Validate(); err != nil {
		return err
	}

	if p.Method != PaymentDirectDebit {
		return nil
	}

	if strings.TrimSpace(p.AccountHolder) == "" {
		return errs.NewValueIsRequiredError("accountHolder")
	}
	if p.IBAN == "" {
		return errs.NewValueIsRequiredError("iban")
	}
	if !ValidIBAN(p.IBAN) {
		return errs.NewValueIsInvalidError("iban")
	}
	return nil
}

// PaymentPatch is a partial update for a Payment.
type PaymentPatch struct {
	Method        *PaymentMethod
	IBAN          *string
	BIC           *string
	AccountHolder *string
}

func (p PaymentPatch) applyTo(pay *Payment) {
	if p.Method != nil {
		pay.Method = *p.Method
	}
	if p.IBAN != nil {
		pay.IBAN = NormalizeIBAN(*p.IBAN)
	}
	if p.BIC != nil {
		pay.BIC = strings.ToUpper(strings.TrimSpace(*p.BIC))
	}
	if p.AccountHolder != nil {
		pay.AccountHolder = *p.AccountHolder
	}
}

// fields returns the draft field-error keys this patch touches.
func (p PaymentPatch) fields() []string {
	var out []string
	if p.Method != nil {
		out = append(out, "paymentMethod")
	}
	if p.IBAN != nil {
		out = append(out, "iban")
	}
	if p.BIC != nil {
		out = append(out, "bic")
	}
	if p.AccountHolder != nil {
		out = append(out, "accountHolder")
	}
	return out
}

// Consents are the acceptance flags collected at review time. Both
// TermsAccepted and PrivacyAccepted must be true before submission;
// Newsletter is optional.
type Consents struct {
	TermsAccepted   bool
	PrivacyAccepted bool
	Newsletter      bool
}

// ConsentsPatch is a partial update for Consents.
type ConsentsPatch struct {
	TermsAccepted   *bool
	PrivacyAccepted *bool
	Newsletter      *bool
}

func (p ConsentsPatch) applyTo(c *Consents) {
	if p.TermsAccepted != nil {
		c.TermsAccepted = *p.TermsAccepted
	}
	if p.PrivacyAccepted != nil {
		c.PrivacyAccepted = *p.PrivacyAccepted
	}
	if p.Newsletter != nil {
		c.Newsletter = *p.Newsletter
	}
}

// fields returns the draft field-error keys this patch touches.
func (p ConsentsPatch) fields() []string {
	var out []string
	if p.TermsAccepted != nil {
		out = append(out, "terms")
	}
	if p.PrivacyAccepted != nil {
		out = append(out, "privacy")
	}
	return out
}
