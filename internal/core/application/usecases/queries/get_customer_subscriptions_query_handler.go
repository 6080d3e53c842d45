package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerSubscriptionsQueryHandler lists a customer's subscription
// orders from the database, newest first.
type GetCustomerSubscriptionsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerSubscriptionsQueryHandler creates a handler for the
// customer subscription listing.
func NewGetCustomerSubscriptionsQueryHandler(db *gorm.DB) GetCustomerSubscriptionsQueryHandler {
	return GetCustomerSubscriptionsQueryHandler{db: db}
}

// Handle executes the query. A customer without orders yields an empty
// slice, not an error.
func (h GetCustomerSubscriptionsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerSubscriptionsQuery,
) ([]SubscriptionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	subscriptions := make([]SubscriptionResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_email,
			delivery_city,
			delivery_plz,
			variant_id,
			cadence,
			billing_interval,
			start_date,
			delivery_method,
			monthly_price,
			yearly_price,
			delivery_fee,
			total,
			payment_method,
			newsletter,
			created_at
		FROM subscriptions
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		subscription, scanErr := scanSubscription(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		subscriptions = append(subscriptions, subscription)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return subscriptions, nil
}
