package checkout

import (
	"aboshop/internal/pkg/errs"
)

// Step is a position in the checkout workflow. The seven steps form a
// strictly ordered sequence; forward entry is gated by guards on the
// accumulated draft state while backward navigation is unrestricted,
// since earlier data remains valid.
//
//	Address(1) → Configure(2) → Identify(3) → Billing(4) →
//	Payment(5) → Review(6) → Confirmation(7)
type Step int

const (
	// StepUnknown catches uninitialized Step values.
	StepUnknown Step = iota

	// StepAddress collects the delivery address and derives delivery info.
	StepAddress

	// StepConfigure selects variant, cadence, billing interval, start date.
	StepConfigure

	// StepIdentify attaches a customer identity via login or registration.
	StepIdentify

	// StepBilling collects the billing address (possibly derived).
	StepBilling

	// StepPayment collects the payment selection.
	StepPayment

	// StepReview shows the order for confirmation and submits it.
	StepReview

	// StepConfirmation is the terminal thank-you position; requires a
	// completed order.
	StepConfirmation
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:      "Unknown",
		StepAddress:      "Address",
		StepConfigure:    "Configure",
		StepIdentify:     "Identify",
		StepBilling:      "Billing",
		StepPayment:      "Payment",
		StepReview:       "Review",
		StepConfirmation: "Confirmation",
	}
}

// Validate checks the step is one of the seven workflow positions.
func (s Step) Validate() error {
	if s < StepAddress || s > StepConfirmation {
		return errs.NewValueIsOutOfRangeError("step", int(s), int(StepAddress), int(StepConfirmation))
	}
	return nil
}

// String returns the step name, "Unknown" for invalid values.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the following step, capped at Confirmation.
func (s Step) Next() Step {
	if s >= StepConfirmation {
		return StepConfirmation
	}
	return s + 1
}

// ParseStep converts a numeric position (1..7) to a Step.
func ParseStep(n int) (Step, error) {
	s := Step(n)
	if err := s.Validate(); err != nil {
		return StepUnknown, err
	}
	return s, nil
}

// ResolveEntry evaluates the entry guard for the target step against the
// draft and returns the step that should actually be entered. A failing
// guard yields the fallback step rather than an error; guard redirects
// are silent navigation, not failures. Navigating strictly backward is
// always allowed.
//
// Guard table:
//
//	Configure     delivery postal code set          → Address
//	Identify      delivery postal code set          → Address
//	Identify      identity already attached         → skip forward to Billing
//	Billing       identity attached                 → Identify (Configure if no address)
//	Payment       billing postal code set           → Billing
//	Review        payment method set                → Payment
//	Confirmation  order complete                    → Address
//
// A fallback step's own guard may fail as well, so resolution repeats
// until it reaches a step whose guard holds. Every redirect moves
// strictly earlier except the Identify skip to Billing, which is stable
// for drafts carrying an identity, so the chain always terminates.
// Re-entering the current step runs its guard too; the draft can never
// rest on a step whose guard no longer holds.
func (d *Draft) ResolveEntry(target Step) Step {
	if target.Validate() != nil {
		return d.currentStep
	}

	if target < d.currentStep {
		return target
	}

	for {
		resolved := d.resolveGuard(target)
		if resolved == target {
			return resolved
		}
		target = resolved
	}
}

func (d *Draft) resolveGuard(target Step) Step {
	switch target {
	case StepAddress:
		return StepAddress

	case StepConfigure:
		if !d.deliveryAddress.HasPostalCode() {
			return StepAddress
		}
		return StepConfigure

	case StepIdentify:
		if !d.deliveryAddress.HasPostalCode() {
			return StepAddress
		}
		if d.customer != nil {
			return StepBilling
		}
		return StepIdentify

	case StepBilling:
		if d.customer == nil {
			if !d.deliveryAddress.HasPostalCode() {
				return StepConfigure
			}
			return StepIdentify
		}
		return StepBilling

	case StepPayment:
		if !d.billingAddress.HasPostalCode() {
			return StepBilling
		}
		return StepPayment

	case StepReview:
		if d.payment.Method.Validate() != nil {
			return StepPayment
		}
		return StepReview

	case StepConfirmation:
		if !d.orderComplete {
			return StepAddress
		}
		return StepConfirmation
	}

	return target
}

// EnterStep resolves the entry guard for target and moves the draft to
// the resolved step. Entry is idempotent: resolving to the current step
// leaves the draft unchanged apart from the position itself.
func (d *Draft) EnterStep(target Step) Step {
	resolved := d.ResolveEntry(target)
	d.currentStep = resolved
	d.touch()
	return resolved
}
