package queries

import (
	"context"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSubscriptionQueryHandler retrieves one subscription order from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetSubscriptionQueryHandler struct {
	db *gorm.DB
}

// NewGetSubscriptionQueryHandler creates a handler for subscription
// retrieval. Requires a GORM database connection for query execution.
func NewGetSubscriptionQueryHandler(db *gorm.DB) GetSubscriptionQueryHandler {
	return GetSubscriptionQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// subscription exists under the identifier.
func (h GetSubscriptionQueryHandler) Handle(
	ctx context.Context,
	query GetSubscriptionQuery,
) (SubscriptionResponse, error) {
	if err := query.Validate(); err != nil {
		return SubscriptionResponse{}, err
	}

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
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return SubscriptionResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return SubscriptionResponse{}, err
		}
		return SubscriptionResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}

	response, err := scanSubscription(rows.Scan)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	return response, rows.Err()
}

// scanSubscription maps one subscriptions row onto the read model,
// converting database types to domain types.
func scanSubscription(scan func(dest ...any) error) (SubscriptionResponse, error) {
	var (
		response   SubscriptionResponse
		id         uuid.UUID
		customerID uuid.UUID
		cadence    int
		interval   int
		method     int
		payMethod  int
	)

	err := scan(
		&id,
		&customerID,
		&response.CustomerEmail,
		&response.DeliveryCity,
		&response.DeliveryPLZ,
		&response.VariantID,
		&cadence,
		&interval,
		&response.StartDate,
		&method,
		&response.MonthlyPrice,
		&response.YearlyPrice,
		&response.DeliveryFee,
		&response.Total,
		&payMethod,
		&response.Newsletter,
		&response.CreatedAt,
	)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return SubscriptionResponse{}, err
	}
	response.OrderID = orderID

	owner, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return SubscriptionResponse{}, err
	}
	response.CustomerID = owner

	response.Cadence = checkout.Cadence(cadence).String()
	response.Interval = checkout.BillingInterval(interval).String()
	response.DeliveryMethod = checkout.DeliveryMethod(method).String()
	response.PaymentMethod = checkout.PaymentMethod(payMethod).String()

	return response, nil
}
