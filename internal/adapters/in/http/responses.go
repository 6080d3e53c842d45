package http

import (
	"strings"

	"aboshop/internal/core/domain/model/checkout"
)

// ErrorResponse is the generic error body for requests that never
// reached a draft (bad session, malformed JSON, structural validation).
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CheckoutStateResponse is the full wizard state returned by every
// checkout endpoint. The client renders whatever step and errors it
// names; successful and failed commands use the same shape.
type CheckoutStateResponse struct {
	Step            int               `json:"step"`
	StepName        string            `json:"stepName"`
	DeliveryAddress AddressResponse   `json:"deliveryAddress"`
	DeliveryInfo    DeliveryInfoView  `json:"deliveryInfo"`
	Configuration   ConfigurationView `json:"configuration"`
	Quote           QuoteView         `json:"quote"`
	Customer        *CustomerView     `json:"customer,omitempty"`
	Billing         BillingView       `json:"billing"`
	Payment         PaymentView       `json:"payment"`
	Consents        ConsentsView      `json:"consents"`
	Complete        bool              `json:"complete"`
	OrderID         string            `json:"orderId,omitempty"`
	Loading         bool              `json:"loading"`
	LastError       string            `json:"lastError,omitempty"`
	FieldErrors     map[string]string `json:"fieldErrors,omitempty"`
}

type AddressResponse struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Street2     string `json:"street2,omitempty"`
	PLZ         string `json:"plz"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

type DeliveryInfoView struct {
	DistanceKm        float64       `json:"distanceKm"`
	Method            string        `json:"method"`
	AvailableVariants []VariantView `json:"availableVariants"`
}

type VariantView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ConfigurationView struct {
	VariantID     int    `json:"variantId"`
	Cadence       string `json:"cadence"`
	Interval      string `json:"interval"`
	StartDate     string `json:"startDate,omitempty"`
	DeliveryNotes string `json:"deliveryNotes,omitempty"`
}

type QuoteView struct {
	MonthlyPrice float64 `json:"monthlyPrice"`
	YearlyPrice  float64 `json:"yearlyPrice"`
	DeliveryFee  float64 `json:"deliveryFee"`
	Discount     string  `json:"discount"`
	Total        float64 `json:"total"`
}

type CustomerView struct {
	ID         string `json:"id"`
	Salutation string `json:"salutation,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
}

type BillingView struct {
	SameAsDelivery bool            `json:"sameAsDelivery"`
	Salutation     string          `json:"salutation,omitempty"`
	FirstName      string          `json:"firstName,omitempty"`
	LastName       string          `json:"lastName,omitempty"`
	CompanyName    string          `json:"companyName,omitempty"`
	Address        AddressResponse `json:"address"`
}

type PaymentView struct {
	Method        string `json:"method"`
	IBAN          string `json:"iban,omitempty"`
	BIC           string `json:"bic,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
}

type ConsentsView struct {
	TermsAccepted   bool `json:"termsAccepted"`
	PrivacyAccepted bool `json:"privacyAccepted"`
	Newsletter      bool `json:"newsletter"`
}

// stateFromDraft renders the draft for the client. The IBAN is masked
// down to its last four characters; the full value never leaves the server.
func stateFromDraft(draft *checkout.Draft) CheckoutStateResponse {
	state := CheckoutStateResponse{
		Step:            int(draft.CurrentStep()),
		StepName:        draft.CurrentStep().String(),
		DeliveryAddress: addressResponse(draft.DeliveryAddress()),
		DeliveryInfo:    deliveryInfoView(draft.DeliveryInfo()),
		Configuration:   configurationView(draft.Configuration()),
		Quote:           quoteView(draft.Quote()),
		Billing:         billingView(draft.BillingAddress()),
		Payment:         paymentView(draft.Payment()),
		Consents: ConsentsView{
			TermsAccepted:   draft.Consents().TermsAccepted,
			PrivacyAccepted: draft.Consents().PrivacyAccepted,
			Newsletter:      draft.Consents().Newsletter,
		},
		Complete:  draft.IsComplete(),
		Loading:   draft.IsLoading(),
		LastError: draft.LastError(),
	}

	if c := draft.Customer(); c != nil {
		state.Customer = &CustomerView{
			ID:         c.ID().String(),
			Salutation: c.Salutation(),
			FirstName:  c.FirstName(),
			LastName:   c.LastName(),
			Email:      c.Email(),
		}
	}
	if orderID := draft.OrderID(); orderID != nil {
		state.OrderID = orderID.String()
	}
	if fieldErrors := draft.FieldErrors(); len(fieldErrors) > 0 {
		state.FieldErrors = fieldErrors
	}

	return state
}

func addressResponse(a checkout.Address) AddressResponse {
	return AddressResponse{
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		Street2:     a.Street2,
		PLZ:         a.PostalCode,
		City:        a.City,
		Country:     a.Country,
	}
}

func deliveryInfoView(info checkout.DeliveryInfo) DeliveryInfoView {
	variants := make([]VariantView, len(info.AvailableVariants))
	for i, v := range info.AvailableVariants {
		variants[i] = VariantView{ID: v.ID, Name: v.Name, Description: v.Description}
	}
	return DeliveryInfoView{
		DistanceKm:        info.DistanceKm,
		Method:            info.Method.String(),
		AvailableVariants: variants,
	}
}

func configurationView(cfg checkout.Configuration) ConfigurationView {
	view := ConfigurationView{
		VariantID:     cfg.VariantID,
		Cadence:       cfg.Cadence.String(),
		Interval:      cfg.Interval.String(),
		DeliveryNotes: cfg.DeliveryNotes,
	}
	if !cfg.StartDate.IsZero() {
		view.StartDate = cfg.StartDate.Format("2006-01-02")
	}
	return view
}

func quoteView(q checkout.Quote) QuoteView {
	return QuoteView{
		MonthlyPrice: float64(q.MonthlyPrice),
		YearlyPrice:  float64(q.YearlyPrice),
		DeliveryFee:  float64(q.DeliveryFee),
		Discount:     q.Discount,
		Total:        float64(q.Total),
	}
}

func billingView(b checkout.BillingAddress) BillingView {
	return BillingView{
		SameAsDelivery: b.SameAsDelivery,
		Salutation:     b.Salutation,
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		CompanyName:    b.CompanyName,
		Address:        addressResponse(b.Address),
	}
}

func paymentView(p checkout.Payment) PaymentView {
	return PaymentView{
		Method:        p.Method.String(),
		IBAN:          maskIBAN(p.IBAN),
		BIC:           p.BIC,
		AccountHolder: p.AccountHolder,
	}
}

// maskIBAN keeps the last four characters visible.
func maskIBAN(iban string) string {
	if len(iban) <= 4 {
		return iban
	}
	return strings.Repeat("*", len(iban)-4) + iban[len(iban)-4:]
}
