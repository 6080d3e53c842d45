package checkout

import (
	"errors"
	"time"

	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"
)

var (
	// ErrDraftIsNotConstructed is returned when a Draft instance was not
	// created through the NewDraft factory method.
	ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

	// ErrOrderAlreadyComplete is returned when attempting to complete a
	// draft a second time. Completion is one-way; only Reset clears it.
	ErrOrderAlreadyComplete = errors.New("order is already complete")
)

// Draft is the aggregate root of an in-progress subscription purchase.
// It accumulates everything the customer has entered across the workflow
// steps plus the current workflow position, and is the single source of
// truth for the session.
//
// Invariants:
//   - Mutated exclusively through the named update operations (no direct
//     field writes); each operation merges a partial record for one area
//     and leaves all other areas untouched.
//   - Single-writer: the workflow steps are the only writers; the pricing
//     engine only produces values the steps write back.
//   - orderComplete is one-way; no operation short of Reset unsets it.
//   - A quote is only applied if it was computed for the latest
//     configuration revision; superseded in-flight computations are
//     discarded rather than raced into the draft.
type Draft struct {
	sessionID kernel.UUID

	currentStep Step

	deliveryAddress Address
	deliveryInfo    DeliveryInfo

	configuration Configuration
	// configRevision increments on every configuration change and tags
	// price computations so stale results can be discarded.
	configRevision uint64

	quote Quote
	// quoteRevision is the configuration revision the current quote was
	// computed for.
	quoteRevision uint64

	customer *customer.Customer

	billingAddress BillingAddress
	payment        Payment
	consents       Consents

	orderComplete bool
	orderID       *kernel.UUID

	isLoading   bool
	lastError   string
	fieldErrors map[string]string

	touchedAt time.Time
	nowFunc   func() time.Time

	isConstructed bool
}

// NewDraft creates a Draft with all-empty defaults at the Address step.
// Defaults mirror the initial form state: country pre-filled, daily
// cadence, annual interval, invoice payment.
func NewDraft(sessionID kernel.UUID) (*Draft, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	d := &Draft{
		sessionID:     sessionID,
		nowFunc:       time.Now,
		isConstructed: true,
	}
	d.applyDefaults()
	d.touch()
	return d, nil
}

// applyDefaults resets every area to its initial value.
func (d *Draft) applyDefaults() {
	d.currentStep = StepAddress
	d.deliveryAddress = Address{Country: DefaultCountry}
	d.deliveryInfo = DeliveryInfo{Method: MethodLocalAgent, AvailableVariants: []Variant{}}
	d.configuration = Configuration{Cadence: CadenceDaily, Interval: IntervalAnnual}
	d.configRevision = 0
	d.quote = Quote{Discount: "0%", Method: MethodLocalAgent}
	d.quoteRevision = 0
	d.customer = nil
	d.billingAddress = BillingAddress{Address: Address{Country: DefaultCountry}}
	d.payment = Payment{Method: PaymentInvoice}
	d.consents = Consents{}
	d.orderComplete = false
	d.orderID = nil
	d.isLoading = false
	d.lastError = ""
	d.fieldErrors = make(map[string]string)
}

// Validate ensures the Draft was created via NewDraft.
func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}
	return nil
}

// SessionID returns the session this draft belongs to.
func (d *Draft) SessionID() kernel.UUID {
	return d.sessionID
}

// CurrentStep returns the current workflow position.
func (d *Draft) CurrentStep() Step {
	return d.currentStep
}

// DeliveryAddress returns the delivery address entered so far.
func (d *Draft) DeliveryAddress() Address {
	return d.deliveryAddress
}

// DeliveryInfo returns the derived delivery facts.
func (d *Draft) DeliveryInfo() DeliveryInfo {
	return d.deliveryInfo
}

// Configuration returns the product configuration.
func (d *Draft) Configuration() Configuration {
	return d.configuration
}

// ConfigRevision returns the revision tag of the current configuration.
// Price computations must carry this tag back into ApplyQuote.
func (d *Draft) ConfigRevision() uint64 {
	return d.configRevision
}

// Quote returns the current price quote.
func (d *Draft) Quote() Quote {
	return d.quote
}

// Customer returns the attached identity, nil before login.
func (d *Draft) Customer() *customer.Customer {
	return d.customer
}

// BillingAddress returns the billing address.
func (d *Draft) BillingAddress() BillingAddress {
	return d.billingAddress
}

// Payment returns the payment selection.
func (d *Draft) Payment() Payment {
	return d.payment
}

// Consents returns the acceptance flags.
func (d *Draft) Consents() Consents {
	return d.consents
}

// IsComplete reports whether the order has been submitted successfully.
func (d *Draft) IsComplete() bool {
	return d.orderComplete
}

// OrderID returns the server-assigned order identifier, nil until the
// order is complete.
func (d *Draft) OrderID() *kernel.UUID {
	return d.orderID
}

// IsLoading reports whether a collaborator call is in flight.
func (d *Draft) IsLoading() bool {
	return d.isLoading
}

// LastError returns the banner error from the last failed collaborator
// call, empty when none.
func (d *Draft) LastError() string {
	return d.lastError
}

// FieldErrors returns a copy of the inline field errors.
func (d *Draft) FieldErrors() map[string]string {
	out := make(map[string]string, len(d.fieldErrors))
	for k, v := range d.fieldErrors {
		out[k] = v
	}
	return out
}

// TouchedAt returns the time of the last mutation, used for idle-draft
// pruning.
func (d *Draft) TouchedAt() time.Time {
	return d.touchedAt
}

// ApplyDeliveryAddress merges a partial delivery address. Edited fields
// have their inline errors cleared.
func (d *Draft) ApplyDeliveryAddress(patch AddressPatch) {
	patch.applyTo(&d.deliveryAddress)
	d.clearFieldErrors(patch.fields("")...)
	d.touch()
}

// ApplyDeliveryInfo merges derived delivery facts. Called by the address
// step after eligibility lookups; never driven by user input directly.
func (d *Draft) ApplyDeliveryInfo(patch DeliveryInfoPatch) {
	patch.applyTo(&d.deliveryInfo)
	d.touch()
}

// ApplyConfiguration merges a partial configuration and returns the new
// configuration revision. The caller passes the revision to the pricing
// computation it triggers so the result can be matched in ApplyQuote.
func (d *Draft) ApplyConfiguration(patch ConfigurationPatch) uint64 {
	patch.applyTo(&d.configuration)
	d.configRevision++
	d.clearFieldErrors("variant", "startDate")
	d.touch()
	return d.configRevision
}

// ApplyQuote stores a computed quote if it belongs to the latest
// configuration revision. Quotes computed for superseded revisions are
// discarded and false is returned: last-write-by-trigger-order wins, not
// last-to-complete.
func (d *Draft) ApplyQuote(q Quote, revision uint64) bool {
	if revision < d.configRevision {
		return false
	}
	d.quote = q
	d.quoteRevision = revision
	d.touch()
	return true
}

// SetCustomer attaches an identity. Full replace: identity is atomic,
// not merged.
func (d *Draft) SetCustomer(c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	d.customer = c
	d.touch()
	return nil
}

// ApplyBillingAddress merges a partial billing address.
func (d *Draft) ApplyBillingAddress(patch BillingAddressPatch) {
	patch.applyTo(&d.billingAddress)
	d.clearFieldErrors(patch.AddressPatch.fields("billing.")...)
	d.touch()
}

// CopyBillingFromDelivery derives the billing address from the current
// delivery address and the attached identity, marking it SameAsDelivery.
func (d *Draft) CopyBillingFromDelivery() {
	b := BillingAddress{
		Address:        d.deliveryAddress,
		SameAsDelivery: true,
	}
	if d.customer != nil {
		b.Salutation = d.customer.Salutation()
		b.FirstName = d.customer.FirstName()
		b.LastName = d.customer.LastName()
	}
	d.billingAddress = b
	d.touch()
}

// ApplyPayment merges a partial payment selection.
func (d *Draft) ApplyPayment(patch PaymentPatch) {
	patch.applyTo(&d.payment)
	d.clearFieldErrors(patch.fields()...)
	d.touch()
}

// ApplyConsents merges the acceptance flags.
func (d *Draft) ApplyConsents(patch ConsentsPatch) {
	patch.applyTo(&d.consents)
	d.clearFieldErrors(patch.fields()...)
	d.touch()
}

// MarkComplete records a successful submission. One-way: a second call
// returns ErrOrderAlreadyComplete and only Reset clears the flag.
func (d *Draft) MarkComplete(orderID kernel.UUID) error {
	if d.orderComplete {
		return ErrOrderAlreadyComplete
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderComplete = true
	d.orderID = &orderID
	d.touch()
	return nil
}

// Reset restores all defaults, including orderComplete=false.
func (d *Draft) Reset() {
	d.applyDefaults()
	d.touch()
}

// SetLoading flags a collaborator call in flight.
func (d *Draft) SetLoading(loading bool) {
	d.isLoading = loading
	d.touch()
}

// SetLastError records a banner error from a failed collaborator call.
// The draft state is otherwise preserved for retry.
func (d *Draft) SetLastError(msg string) {
	d.lastError = msg
	d.touch()
}

// ClearLastError removes the banner error.
func (d *Draft) ClearLastError() {
	d.lastError = ""
}

// SetFieldError records an inline error next to the offending field.
func (d *Draft) SetFieldError(field, msg string) {
	d.fieldErrors[field] = msg
	d.touch()
}

// HasFieldErrors reports whether any inline errors are present.
func (d *Draft) HasFieldErrors() bool {
	return len(d.fieldErrors) > 0
}

func (d *Draft) clearFieldErrors(fields ...string) {
	for _, f := range fields {
		delete(d.fieldErrors, f)
	}
}

func (d *Draft) touch() {
	if d.nowFunc != nil {
		d.touchedAt = d.nowFunc()
	}
}
