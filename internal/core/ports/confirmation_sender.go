package ports

import (
	"context"

	"aboshop/internal/core/domain/model/checkout"
)

// ConfirmationSender delivers the order confirmation to the customer
// after a successful submission. Sending is best effort: a failure must
// never fail or roll back the order itself.
type ConfirmationSender interface {
	// SendOrderConfirmation sends the confirmation for a submitted order.
	SendOrderConfirmation(ctx context.Context, record *checkout.Record) error
}
