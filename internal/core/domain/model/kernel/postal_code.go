package kernel

import (
	"regexp"

	"aboshop/internal/pkg/errs"
	"aboshop/internal/pkg/guard"
)

// ErrPostalCodeIsNotConstructed is returned when attempting to use an
// improperly initialized PostalCode. Postal codes must be created via
// NewPostalCode to ensure the format invariant holds.
var ErrPostalCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"postal code must be created via NewPostalCode constructor")

var postalCodePattern = regexp.MustCompile(`^\d{5}$`)

// PostalCode is an immutable value object for a German 5-digit postal
// code. Every eligibility and distance lookup keys on it, so the format
// invariant (exactly five digits) is enforced at construction time and a
// properly constructed PostalCode never needs re-validation downstream.
//
// Example:
//
//	plz, err := kernel.NewPostalCode("72762")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(plz.String()) // Output: 72762
type PostalCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPostalCode creates a PostalCode from its string form.
// Returns an error unless the input is exactly five digits.
func NewPostalCode(value string) (PostalCode, error) {
	code := PostalCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := code.setValue(value); err != nil {
		return PostalCode{}, err
	}

	return code, nil
}

// Validate checks that the PostalCode was created via NewPostalCode.
// The zero value fails this check.
func (p PostalCode) Validate() error {
	return p.guard.Validate(ErrPostalCodeIsNotConstructed)
}

// String returns the five-digit code.
func (p PostalCode) String() string {
	return p.value
}

// FirstDigit returns the leading digit as an integer.
// Used by the deterministic distance fallback for unknown codes.
func (p PostalCode) FirstDigit() int {
	if p.value == "" {
		return 0
	}
	return int(p.value[0] - '0')
}

// IsEqual compares two postal codes by value.
func (p PostalCode) IsEqual(other PostalCode) bool {
	return p.value == other.value
}

// setValue validates and sets the code.
// Pointer receiver for self-encapsulated validation during construction.
func (p *PostalCode) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	if !postalCodePattern.MatchString(value) {
		return errs.NewValueIsInvalidError("postal code")
	}

	p.value = value
	return nil
}
