// Package notify implements the ConfirmationSender port. The production
// sender delivers order confirmations through Amazon SES; a log-only
// sender covers local development where no SES credentials exist.
package notify

import (
	"context"
	"fmt"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the subset of the SES v2 client the sender needs.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESConfirmationSender sends order confirmations through Amazon SES.
type SESConfirmationSender struct {
	client SESAPI
	sender string
}

// NewSESConfirmationSender creates a sender using the given SES client.
// The sender address must be verified in SES.
func NewSESConfirmationSender(client SESAPI, senderAddress string) *SESConfirmationSender {
	return &SESConfirmationSender{
		client: client,
		sender: senderAddress,
	}
}

// NewSESClient loads the default AWS config and returns a concrete SES client.
func NewSESClient(ctx context.Context, region string) (*sesv2.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return sesv2.NewFromConfig(cfg), nil
}

var _ ports.ConfirmationSender = (*SESConfirmationSender)(nil)

// SendOrderConfirmation sends the confirmation email for a submitted order.
func (s *SESConfirmationSender) SendOrderConfirmation(ctx context.Context, record *checkout.Record) error {
	subject := fmt.Sprintf("Ihre Bestellung %s", record.OrderID.String())
	body := confirmationBody(record)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: &s.sender,
		Destination: &sestypes.Destination{
			ToAddresses: []string{record.CustomerEmail},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: &subject},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: &body},
				},
			},
		},
	}

	_, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}

// confirmationBody renders the plain-text confirmation for the order.
func confirmationBody(record *checkout.Record) string {
	return fmt.Sprintf(
		"Vielen Dank für Ihre Bestellung!\n\n"+
			"Bestellnummer: %s\n"+
			"Erscheinungsweise: %s\n"+
			"Lieferbeginn: %s\n"+
			"Lieferadresse: %s %s, %s %s\n"+
			"Zustellung: %s\n"+
			"Monatspreis: %.2f EUR\n"+
			"Gesamt (%s): %.2f EUR\n",
		record.OrderID.String(),
		record.Configuration.Cadence.String(),
		record.Configuration.StartDate.Format("02.01.2006"),
		record.DeliveryAddress.Street,
		record.DeliveryAddress.HouseNumber,
		record.DeliveryAddress.PostalCode,
		record.DeliveryAddress.City,
		record.Quote.Method.String(),
		float64(record.Quote.MonthlyPrice),
		record.Configuration.Interval.String(),
		float64(record.Quote.Total),
	)
}
