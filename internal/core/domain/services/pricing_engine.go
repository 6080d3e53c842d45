package services

import (
	"math"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"
)

const earthRadiusKm = 6371.0

// PricingEngine is a domain service responsible for distance resolution,
// delivery eligibility and subscription price calculation.
//
// Key responsibilities:
//   - Resolving delivery distance from the operator's home postal code
//   - Determining which local editions can be delivered to a postal code
//   - Calculating monthly and yearly subscription prices with delivery fees
//
// Business rules:
//   - The home postal code always resolves to distance zero
//   - Unknown postal codes get a deterministic distance estimate, never an error
//   - Postal delivery applies beyond the local reach or for out-of-coverage editions
//   - Annual billing earns a fixed discount on the yearly price
//
// Example usage:
//
//	engine := NewPricingEngine()
//	distance := engine.ResolveDistance(code)
//	quote, err := engine.CalculatePrice(PriceInput{
//	    PostalCode: code.String(),
//	    DistanceKm: distance,
//	    VariantID:  2,
//	    Cadence:    checkout.CadenceWeekend,
//	    Interval:   checkout.IntervalAnnual,
//	})
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
//
// Returns:
//   - PricingEngine: A new instance ready for distance and price calculations
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// ResolveDistance computes the delivery distance in kilometers from the
// operator's home location to the given postal code.
//
// Resolution order:
//   - The home postal code itself resolves to 0
//   - Codes with known coordinates use the great-circle distance
//   - All other codes use the estimate first_digit*50 + 100
//
// The result is always usable; this method never fails.
func (e PricingEngine) ResolveDistance(code kernel.PostalCode) float64 {
	if code.String() == HomePostalCode {
		return 0
	}

	home, ok := postalCodeDirectory[HomePostalCode]
	if !ok {
		return e.estimateDistance(code)
	}

	dest, ok := postalCodeDirectory[code.String()]
	if !ok {
		return e.estimateDistance(code)
	}

	return haversineKm(home.lat, home.lon, dest.lat, dest.lon)
}

// estimateDistance is the deterministic fallback for postal codes without
// known coordinates.
func (e PricingEngine) estimateDistance(code kernel.PostalCode) float64 {
	return float64(code.FirstDigit())*50 + 100
}

// ResolveAvailableVariants returns the local editions that can be ordered
// for the given postal code.
//
// The county edition is not yet offered through self-service checkout and
// is excluded from the result. An empty or unparseable postal code yields
// an empty slice, never an error.
func (e PricingEngine) ResolveAvailableVariants(plz string) []checkout.Variant {
	variants := make([]checkout.Variant, 0, len(variantCatalog))

	if _, err := kernel.NewPostalCode(plz); err != nil {
		return variants
	}

	for _, v := range variantCatalog {
		if v.ID == CountyVariantID {
			continue
		}
		variants = append(variants, v)
	}

	return variants
}

// ResolveLocalCoverageVariant returns the edition delivered locally in the
// city behind the given postal code. Postal codes outside the coverage
// tables default to the generic edition.
func (e PricingEngine) ResolveLocalCoverageVariant(plz string) int {
	info, ok := postalCodeDirectory[plz]
	if !ok {
		return DefaultVariantID
	}

	variantID, ok := cityCoverage[info.city]
	if !ok {
		return DefaultVariantID
	}

	return variantID
}

// ResolveCity returns the city name behind a postal code, or the generic
// coverage city when the code is not in the directory.
func (e PricingEngine) ResolveCity(plz string) string {
	info, ok := postalCodeDirectory[plz]
	if !ok {
		return GenericCoverageCity
	}

	return info.city
}

// VariantByID looks up an edition in the catalog.
//
// Returns:
//   - checkout.Variant: The matching edition
//   - error: errs.ObjectNotFoundError when the catalog has no such edition
func (e PricingEngine) VariantByID(id int) (checkout.Variant, error) {
	for _, v := range variantCatalog {
		if v.ID == id {
			return v, nil
		}
	}

	return checkout.Variant{}, errs.NewObjectNotFoundError("variantID", id)
}

// PriceInput carries everything CalculatePrice needs to produce a quote.
type PriceInput struct {
	PostalCode string
	DistanceKm float64
	VariantID  int
	Cadence    checkout.Cadence
	Interval   checkout.BillingInterval
}

// CalculatePrice produces a full price quote for a subscription configuration.
//
// Calculation:
//   - Base monthly price depends on the cadence
//   - Premium editions add a fixed surcharge
//   - Postal delivery applies when the distance exceeds the local reach
//     or the chosen edition is not the locally covered one
//   - The postal fee is tiered by distance bracket; local agent delivery is free
//   - Yearly price is twelve monthly prices, discounted for annual billing
//   - All monetary results are rounded to two decimals
//
// Returns:
//   - checkout.Quote: Monthly and yearly prices, delivery fee, method and total
//   - error: Validation error when the cadence or interval is invalid
func (e PricingEngine) CalculatePrice(in PriceInput) (checkout.Quote, error) {
	if err := in.Cadence.Validate(); err != nil {
		return checkout.Quote{}, err
	}

	if err := in.Interval.Validate(); err != nil {
		return checkout.Quote{}, err
	}

	base := baseMonthlyDaily
	if in.Cadence == checkout.CadenceWeekend {
		base = baseMonthlyWeekend
	}

	switch in.VariantID {
	case SportsVariantID:
		base += sportsSurcharge
	case CountyVariantID:
		base += countySurcharge
	}

	localVariant := e.ResolveLocalCoverageVariant(in.PostalCode)
	requiresPost := in.DistanceKm > localReachKm || in.VariantID != localVariant

	method := checkout.MethodLocalAgent
	fee := 0.0
	if requiresPost {
		method = checkout.MethodPost
		fee = postFeeForDistance(in.DistanceKm)
	}

	monthly := kernel.Money(base).Add(kernel.Money(fee)).Round2()

	yearly := monthly.MulFactor(12)
	discount := "0%"
	if in.Interval == checkout.IntervalAnnual {
		yearly = yearly.MulFactor(annualDiscountFactor)
		discount = "10%"
	}

	yearlyMoney := yearly.Round2()

	total := monthly
	if in.Interval == checkout.IntervalAnnual {
		total = yearlyMoney
	}

	return checkout.Quote{
		MonthlyPrice: monthly,
		YearlyPrice:  yearlyMoney,
		DeliveryFee:  kernel.Money(fee).Round2(),
		Discount:     discount,
		Method:       method,
		Total:        total,
	}, nil
}

// postFeeForDistance returns the tiered postal delivery fee.
func postFeeForDistance(distanceKm float64) float64 {
	switch {
	case distanceKm <= 100:
		return postFeeNear
	case distanceKm <= 300:
		return postFeeMid
	case distanceKm <= 500:
		return postFeeFar
	default:
		return postFeeFarther
	}
}

// haversineKm computes the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLon := degToRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
