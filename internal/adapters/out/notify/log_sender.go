package notify

import (
	"context"
	"log/slog"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/ports"
)

// LogConfirmationSender writes the confirmation to the log instead of
// sending it. Used in local development where no SES setup exists.
type LogConfirmationSender struct {
	logger *slog.Logger
}

// NewLogConfirmationSender creates a log-only confirmation sender.
func NewLogConfirmationSender(logger *slog.Logger) *LogConfirmationSender {
	return &LogConfirmationSender{
		logger: logger.With("component", "confirmation_sender"),
	}
}

var _ ports.ConfirmationSender = (*LogConfirmationSender)(nil)

// SendOrderConfirmation logs the confirmation that would have been sent.
func (s *LogConfirmationSender) SendOrderConfirmation(_ context.Context, record *checkout.Record) error {
	s.logger.Info("order confirmation",
		"order_id", record.OrderID.String(),
		"email", record.CustomerEmail,
		"body", confirmationBody(record),
	)
	return nil
}
