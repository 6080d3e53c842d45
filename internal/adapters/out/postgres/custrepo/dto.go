// Package custrepo provides data transfer objects and mapping functions for
// customer persistence. This package implements the repository pattern for the
// customer identity, handling the conversion between domain entities and
// database representations.
package custrepo

import (
	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// identities. Email carries a unique index since it is the login key.
type CustomerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Salutation string
	FirstName  string
	LastName   string
	Email      string `gorm:"uniqueIndex"`
	Phone      string
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:         c.ID().Bytes(),
		Salutation: c.Salutation(),
		FirstName:  c.FirstName(),
		LastName:   c.LastName(),
		Email:      c.Email(),
		Phone:      c.Phone(),
	}
}

// toDomain converts a database DTO back to a customer entity using
// RestoreCustomer, so the same invariants apply as at registration.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Salutation, dto.FirstName, dto.LastName, dto.Email, dto.Phone)
}
