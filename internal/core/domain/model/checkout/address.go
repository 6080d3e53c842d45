package checkout

import (
	"errors"

	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"
)

// DefaultCountry is pre-filled into both address forms.
const DefaultCountry = "Germany"

// Address is a delivery destination. Fields are exported because the
// draft merges partial updates into them; completeness is checked with
// Validate, not at construction, since the customer fills the form
// incrementally.
type Address struct {
	Street      string
	HouseNumber string
	Street2     string
	PostalCode  string
	City        string
	Country     string
}

// Validate checks that all required address fields are present and that
// the postal code matches the five-digit format. The postal code check is
// a hard prerequisite: every eligibility lookup keys on it.
func (a Address) Validate() error {
	var errList []error

	if a.Street == "" {
		errList = append(errList, errs.NewValueIsRequiredError("street"))
	}
	if a.HouseNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("houseNumber"))
	}
	if _, err := kernel.NewPostalCode(a.PostalCode); err != nil {
		errList = append(errList, err)
	}
	if a.City == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}

	return errors.Join(errList...)
}

// HasPostalCode reports whether a usable postal code has been entered.
// Used by workflow entry guards.
func (a Address) HasPostalCode() bool {
	_, err := kernel.NewPostalCode(a.PostalCode)
	return err == nil
}

// AddressPatch is a partial update for an Address. Supplied fields
// overwrite, omitted (nil) fields persist.
type AddressPatch struct {
	Street      *string
	HouseNumber *string
	Street2     *string
	PostalCode  *string
	City        *string
	Country     *string
}

func (p AddressPatch) applyTo(a *Address) {
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.HouseNumber != nil {
		a.HouseNumber = *p.HouseNumber
	}
	if p.Street2 != nil {
		a.Street2 = *p.Street2
	}
	if p.PostalCode != nil {
		a.PostalCode = *p.PostalCode
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
}

// fields returns the draft field-error keys this patch touches, so edits
// clear their inline errors.
func (p AddressPatch) fields(prefix string) []string {
	var out []string
	if p.Street != nil {
		out = append(out, prefix+"street")
	}
	if p.HouseNumber != nil {
		out = append(out, prefix+"houseNumber")
	}
	if p.PostalCode != nil {
		out = append(out, prefix+"plz")
	}
	if p.City != nil {
		out = append(out, prefix+"city")
	}
	return out
}

// BillingAddress is the invoice recipient. It is structurally a delivery
// address plus the name of the person billed. When SameAsDelivery is set
// the whole record is derived from the delivery address and the customer
// identity rather than independently owned.
type BillingAddress struct {
	Address
	Salutation     string
	FirstName      string
	LastName       string
	CompanyName    string
	SameAsDelivery bool
}

// Validate checks an independently owned billing address. Derived
// (SameAsDelivery) billing addresses are valid by construction.
func (b BillingAddress) Validate() error {
	if b.SameAsDelivery {
		return nil
	}

	var errList []error
	if b.FirstName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("firstName"))
	}
	if b.LastName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("lastName"))
	}
	errList = append(errList, b.Address.Validate())

	return errors.Join(errList...)
}

// BillingAddressPatch is a partial update for a BillingAddress.
type BillingAddressPatch struct {
	AddressPatch
	Salutation     *string
	FirstName      *string
	LastName       *string
	CompanyName    *string
	SameAsDelivery *bool
}

func (p BillingAddressPatch) applyTo(b *BillingAddress) {
	p.AddressPatch.applyTo(&b.Address)
	if p.Salutation != nil {
		b.Salutation = *p.Salutation
	}
	if p.FirstName != nil {
		b.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		b.LastName = *p.LastName
	}
	if p.CompanyName != nil {
		b.CompanyName = *p.CompanyName
	}
	if p.SameAsDelivery != nil {
		b.SameAsDelivery = *p.SameAsDelivery
	}
}
