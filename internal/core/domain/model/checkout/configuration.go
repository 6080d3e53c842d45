package checkout

import (
	"fmt"
	"time"

	"aboshop/internal/pkg/errs"
)

// MinStartLeadDays is the minimum number of days between ordering and the
// first delivery.
const MinStartLeadDays = 3

// Cadence is the delivery frequency of the subscription.
type Cadence int

const (
	CadenceUnknown Cadence = iota

	// CadenceDaily delivers Monday through Saturday.
	CadenceDaily

	// CadenceWeekend delivers on weekends only and is priced lower.
	CadenceWeekend
)

func getCadenceStrings() map[Cadence]string {
	return map[Cadence]string{
		CadenceUnknown: "Unknown",
		CadenceDaily:   "Daily",
		CadenceWeekend: "Weekend",
	}
}

// ParseCadence converts the wire form ("Daily", "Weekend") to a Cadence.
func ParseCadence(s string) (Cadence, error) {
	for c, str := range getCadenceStrings() {
		if str == s && c != CadenceUnknown {
			return c, nil
		}
	}
	return CadenceUnknown, errs.NewValueIsInvalidErrorWithCause("cadence",
		fmt.Errorf("%q is not a valid cadence", s))
}

// Validate checks the cadence is one of the sellable values.
func (c Cadence) Validate() error {
	if c != CadenceDaily && c != CadenceWeekend {
		return errs.NewValueIsInvalidErrorWithCause("cadence",
			fmt.Errorf("%d is not a valid cadence", c))
	}
	return nil
}

// String returns the display name, "Unknown" for invalid values.
func (c Cadence) String() string {
	if s, ok := getCadenceStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// BillingInterval is how often the subscription is paid.
type BillingInterval int

const (
	IntervalUnknown BillingInterval = iota

	// IntervalMonthly pays every month at the full monthly price.
	IntervalMonthly

	// IntervalAnnual pays once per year with a 10% discount.
	IntervalAnnual
)

func getIntervalStrings() map[BillingInterval]string {
	return map[BillingInterval]string{
		IntervalUnknown: "Unknown",
		IntervalMonthly: "Monthly",
		IntervalAnnual:  "Annual",
	}
}

// ParseBillingInterval converts the wire form ("Monthly", "Annual") to a
// BillingInterval.
func ParseBillingInterval(s string) (BillingInterval, error) {
	for i, str := range getIntervalStrings() {
		if str == s && i != IntervalUnknown {
			return i, nil
		}
	}
	return IntervalUnknown, errs.NewValueIsInvalidErrorWithCause("billing interval",
		fmt.Errorf("%q is not a valid billing interval", s))
}

// Validate checks the interval is one of the payable values.
func (i BillingInterval) Validate() error {
	if i != IntervalMonthly && i != IntervalAnnual {
		return errs.NewValueIsInvalidErrorWithCause("billing interval",
			fmt.Errorf("%d is not a valid billing interval", i))
	}
	return nil
}

// String returns the display name, "Unknown" for invalid values.
func (i BillingInterval) String() string {
	if s, ok := getIntervalStrings()[i]; ok {
		return s
	}
	return "Unknown"
}

// Configuration is the product setup chosen in the configurator step.
// Only that step mutates it; the price quote is recomputed from it on
// every change.
type Configuration struct {
	VariantID     int
	Cadence       Cadence
	Interval      BillingInterval
	StartDate     time.Time
	DeliveryNotes string
}

// MinStartDate returns the earliest allowed subscription start for the
// given clock, truncated to a calendar date.
func MinStartDate(now time.Time) time.Time {
	d := now.AddDate(0, 0, MinStartLeadDays)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// Validate checks the configuration against the given clock. The start
// date must lie at least MinStartLeadDays in the future.
func (c Configuration) Validate(now time.Time) error {
	if err := c.Cadence.Validate(); err != nil {
		return err
	}
	if err := c.Interval.Validate(); err != nil {
		return err
	}
	if c.VariantID <= 0 {
		return errs.NewValueIsRequiredError("variant")
	}
	if c.StartDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	if c.StartDate.Before(MinStartDate(now)) {
		return errs.NewValueIsInvalidErrorWithCause("startDate",
			fmt.Errorf("start date must be at least %d days from now", MinStartLeadDays))
	}
	return nil
}

// ConfigurationPatch is a partial update for a Configuration.
type ConfigurationPatch struct {
	VariantID     *int
	Cadence       *Cadence
	Interval      *BillingInterval
	StartDate     *time.Time
	DeliveryNotes *string
}

func (p ConfigurationPatch) applyTo(c *Configuration) {
	if p.VariantID != nil {
		c.VariantID = *p.VariantID
	}
	if p.Cadence != nil {
		c.Cadence = *p.Cadence
	}
	if p.Interval != nil {
		c.Interval = *p.Interval
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.DeliveryNotes != nil {
		c.DeliveryNotes = *p.DeliveryNotes
	}
}
