package ports

import (
	"context"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
)

// SubscriptionRepository defines the persistence contract for submitted
// subscription orders. Records are immutable once stored; there is no
// update path.
type SubscriptionRepository interface {
	// Add persists a newly submitted subscription order.
	Add(ctx context.Context, record *checkout.Record) error

	// Get retrieves a subscription order by its identifier.
	Get(ctx context.Context, orderID kernel.UUID) (*checkout.Record, error)

	// GetAllForCustomer retrieves every subscription order placed by the
	// given customer, newest first.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*checkout.Record, error)
}
