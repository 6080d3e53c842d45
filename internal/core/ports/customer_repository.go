// Package ports defines the contracts between the checkout core and
// infrastructure. These interfaces establish boundaries for persistence,
// geographic lookups and outbound notifications, enabling dependency
// inversion and testability.
package ports

import (
	"context"

	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// identities. Email is the login key and must be unique.
type CustomerRepository interface {
	// Add persists a new customer.
	// The customer must be valid and the email must not be taken.
	Add(ctx context.Context, customer *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, customer *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by login email.
	// Returns errs.ObjectNotFoundError when no account exists for the email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
