package customer

import (
	"errors"
	"strings"

	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer is the identity attached to a checkout once the customer has
// logged in or registered. It is required before the billing step and all
// later steps may be entered.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must have an email address (the login key)
//   - Must have first and last name
type Customer struct {
	id         kernel.UUID
	salutation string
	firstName  string
	lastName   string
	email      string
	phone      string

	isConstructed bool
}

// NewCustomer creates a Customer with validation. Salutation and phone
// are optional.
func NewCustomer(id kernel.UUID, salutation, firstName, lastName, email, phone string) (*Customer, error) {
	c := &Customer{
		salutation:    salutation,
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(firstName, lastName),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence. The same
// invariants apply as for NewCustomer.
func RestoreCustomer(id kernel.UUID, salutation, firstName, lastName, email, phone string) (*Customer, error) {
	return NewCustomer(id, salutation, firstName, lastName, email, phone)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Salutation returns the form of address, e.g. "Herr" or "Frau".
func (c *Customer) Salutation() string {
	return c.salutation
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// Email returns the login email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the optional phone number.
func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}
