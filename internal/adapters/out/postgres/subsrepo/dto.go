// Package subsrepo provides data transfer objects and mapping functions for
// subscription order persistence. Submitted orders are immutable records;
// the repository only ever inserts and reads them.
package subsrepo

import (
	"time"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the embedded address columns shared by the
// delivery and billing sides of a subscription row.
type AddressDTO struct {
	Street      string
	HouseNumber string
	Street2     string
	PLZ         string `gorm:"column:plz"`
	City        string
	Country     string
}

// SubscriptionDTO represents the database structure for persisting
// submitted subscription orders.
type SubscriptionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerEmail string

	Delivery AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	BillingSalutation     string
	BillingFirstName      string
	BillingLastName       string
	BillingCompanyName    string
	BillingSameAsDelivery bool
	Billing               AddressDTO `gorm:"embedded;embeddedPrefix:billing_"`

	VariantID       int
	Cadence         int
	BillingInterval int
	StartDate       time.Time
	DeliveryNotes   string

	MonthlyPrice   float64
	YearlyPrice    float64
	DeliveryFee    float64
	Discount       string
	DeliveryMethod int
	Total          float64

	PaymentMethod int
	IBAN          string `gorm:"column:iban"`
	BIC           string `gorm:"column:bic"`
	AccountHolder string

	Newsletter bool
	CreatedAt  time.Time
}

// TableName specifies the database table name for subscription orders.
func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

func addressFromDomain(a checkout.Address) AddressDTO {
	return AddressDTO{
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		Street2:     a.Street2,
		PLZ:         a.PostalCode,
		City:        a.City,
		Country:     a.Country,
	}
}

func addressToDomain(dto AddressDTO) checkout.Address {
	return checkout.Address{
		Street:      dto.Street,
		HouseNumber: dto.HouseNumber,
		Street2:     dto.Street2,
		PostalCode:  dto.PLZ,
		City:        dto.City,
		Country:     dto.Country,
	}
}

// fromDomain converts a submitted order record to its database representation.
func fromDomain(record *checkout.Record) SubscriptionDTO {
	return SubscriptionDTO{
		ID:            record.OrderID.Bytes(),
		CustomerID:    record.CustomerID.Bytes(),
		CustomerEmail: record.CustomerEmail,

		Delivery: addressFromDomain(record.DeliveryAddress),

		BillingSalutation:     record.BillingAddress.Salutation,
		BillingFirstName:      record.BillingAddress.FirstName,
		BillingLastName:       record.BillingAddress.LastName,
		BillingCompanyName:    record.BillingAddress.CompanyName,
		BillingSameAsDelivery: record.BillingAddress.SameAsDelivery,
		Billing:               addressFromDomain(record.BillingAddress.Address),

		VariantID:       record.Configuration.VariantID,
		Cadence:         int(record.Configuration.Cadence),
		BillingInterval: int(record.Configuration.Interval),
		StartDate:       record.Configuration.StartDate,
		DeliveryNotes:   record.Configuration.DeliveryNotes,

		MonthlyPrice:   record.Quote.MonthlyPrice.Float64(),
		YearlyPrice:    record.Quote.YearlyPrice.Float64(),
		DeliveryFee:    record.Quote.DeliveryFee.Float64(),
		Discount:       record.Quote.Discount,
		DeliveryMethod: int(record.Quote.Method),
		Total:          record.Quote.Total.Float64(),

		PaymentMethod: int(record.Payment.Method),
		IBAN:          record.Payment.IBAN,
		BIC:           record.Payment.BIC,
		AccountHolder: record.Payment.AccountHolder,

		Newsletter: record.Newsletter,
		CreatedAt:  record.CreatedAt,
	}
}

// toDomain converts a database DTO back to the immutable order record.
func toDomain(dto SubscriptionDTO) (*checkout.Record, error) {
	orderID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return &checkout.Record{
		OrderID:         orderID,
		CustomerID:      customerID,
		CustomerEmail:   dto.CustomerEmail,
		DeliveryAddress: addressToDomain(dto.Delivery),
		BillingAddress: checkout.BillingAddress{
			Address:        addressToDomain(dto.Billing),
			Salutation:     dto.BillingSalutation,
			FirstName:      dto.BillingFirstName,
			LastName:       dto.BillingLastName,
			CompanyName:    dto.BillingCompanyName,
			SameAsDelivery: dto.BillingSameAsDelivery,
		},
		Configuration: checkout.Configuration{
			VariantID:     dto.VariantID,
			Cadence:       checkout.Cadence(dto.Cadence),
			Interval:      checkout.BillingInterval(dto.BillingInterval),
			StartDate:     dto.StartDate,
			DeliveryNotes: dto.DeliveryNotes,
		},
		Quote: checkout.Quote{
			MonthlyPrice: kernel.Money(dto.MonthlyPrice),
			YearlyPrice:  kernel.Money(dto.YearlyPrice),
			DeliveryFee:  kernel.Money(dto.DeliveryFee),
			Discount:     dto.Discount,
			Method:       checkout.DeliveryMethod(dto.DeliveryMethod),
			Total:        kernel.Money(dto.Total),
		},
		Payment: checkout.Payment{
			Method:        checkout.PaymentMethod(dto.PaymentMethod),
			IBAN:          dto.IBAN,
			BIC:           dto.BIC,
			AccountHolder: dto.AccountHolder,
		},
		Newsletter: dto.Newsletter,
		CreatedAt:  dto.CreatedAt,
	}, nil
}
