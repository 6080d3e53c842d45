// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/guard"
)

var ErrGetSubscriptionQueryIsNotConstructed = errors.New(
	"GetSubscriptionQuery must be created via NewGetSubscriptionQuery constructor",
)

// GetSubscriptionQuery retrieves a single submitted subscription order
// by its identifier.
//
// Example:
//
//	query, err := NewGetSubscriptionQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetSubscriptionQueryHandler(db)
//	sub, err := handler.Handle(ctx, query)
type GetSubscriptionQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSubscriptionQuery creates a query for one subscription order.
func NewGetSubscriptionQuery(orderID kernel.UUID) (GetSubscriptionQuery, error) {
	query := GetSubscriptionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetSubscriptionQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSubscriptionQuery) Validate() error {
	return q.guard.Validate(ErrGetSubscriptionQueryIsNotConstructed)
}

// OrderID returns the subscription order identifier.
func (q GetSubscriptionQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetSubscriptionQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// SubscriptionResponse is the read model of a submitted subscription
// order. Enum columns are rendered as display strings.
type SubscriptionResponse struct {
	OrderID        kernel.UUID
	CustomerID     kernel.UUID
	CustomerEmail  string
	DeliveryCity   string
	DeliveryPLZ    string
	VariantID      int
	Cadence        string
	Interval       string
	StartDate      time.Time
	DeliveryMethod string
	MonthlyPrice   float64
	YearlyPrice    float64
	DeliveryFee    float64
	Total          float64
	PaymentMethod  string
	Newsletter     bool
	CreatedAt      time.Time
}
