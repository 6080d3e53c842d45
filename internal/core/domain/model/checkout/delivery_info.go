package checkout

import (
	"fmt"

	"aboshop/internal/pkg/errs"
)

// DeliveryMethod is how the paper reaches the customer.
type DeliveryMethod int

const (
	// MethodUnknown catches uninitialized DeliveryMethod values.
	MethodUnknown DeliveryMethod = iota

	// MethodLocalAgent means delivery by the local carrier network;
	// only available close to home and for the locally covered variant.
	MethodLocalAgent

	// MethodPost means postal delivery, which carries a distance-tiered fee.
	MethodPost
)

func getDeliveryMethodStrings() map[DeliveryMethod]string {
	return map[DeliveryMethod]string{
		MethodUnknown:    "Unknown",
		MethodLocalAgent: "Local Agent",
		MethodPost:       "Post",
	}
}

// Validate checks the method is one of the two deliverable values.
func (m DeliveryMethod) Validate() error {
	if m != MethodLocalAgent && m != MethodPost {
		return errs.NewValueIsInvalidErrorWithCause("delivery method",
			fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

// String returns the display name, "Unknown" for invalid values.
func (m DeliveryMethod) String() string {
	if s, ok := getDeliveryMethodStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// DeliveryMethodForDistance derives the method from the delivery distance
// alone: beyond 50 km the local carrier network does not reach and the
// paper goes by post. Variant mismatches tighten this further during
// price calculation.
func DeliveryMethodForDistance(distanceKm float64) DeliveryMethod {
	if distanceKm > 50 {
		return MethodPost
	}
	return MethodLocalAgent
}

// Variant describes a sellable local edition of the paper.
type Variant struct {
	ID          int
	Name        string
	Description string
}

// DeliveryInfo holds the facts derived from the delivery address: the
// computed distance from the operator's home postal code, the delivery
// method that distance implies, and which variants are sellable at the
// destination. It is owned exclusively by the draft and recomputed
// whenever the delivery address changes; the customer never edits it.
type DeliveryInfo struct {
	DistanceKm        float64
	Method            DeliveryMethod
	AvailableVariants []Variant
}

// DeliveryInfoPatch is a partial update for DeliveryInfo.
type DeliveryInfoPatch struct {
	DistanceKm        *float64
	Method            *DeliveryMethod
	AvailableVariants []Variant
}

func (p DeliveryInfoPatch) applyTo(d *DeliveryInfo) {
	if p.DistanceKm != nil {
		d.DistanceKm = *p.DistanceKm
	}
	if p.Method != nil {
		d.Method = *p.Method
	}
	if p.AvailableVariants != nil {
		d.AvailableVariants = p.AvailableVariants
	}
}
