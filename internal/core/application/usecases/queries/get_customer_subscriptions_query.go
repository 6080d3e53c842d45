package queries

import (
	"errors"

	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/guard"
)

var ErrGetCustomerSubscriptionsQueryIsNotConstructed = errors.New(
	"GetCustomerSubscriptionsQuery must be created via NewGetCustomerSubscriptionsQuery constructor",
)

// GetCustomerSubscriptionsQuery retrieves every subscription order a
// customer has placed, newest first.
type GetCustomerSubscriptionsQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerSubscriptionsQuery creates a query for a customer's
// subscription orders.
func NewGetCustomerSubscriptionsQuery(customerID kernel.UUID) (GetCustomerSubscriptionsQuery, error) {
	query := GetCustomerSubscriptionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetCustomerSubscriptionsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerSubscriptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerSubscriptionsQueryIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (q GetCustomerSubscriptionsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerSubscriptionsQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}
