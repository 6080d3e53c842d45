package ports

import (
	"context"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
)

// GeoDirectory resolves geographic delivery facts for a postal code.
// Lookups always succeed for a well-formed postal code; codes outside
// the directory get deterministic estimates and fallbacks.
type GeoDirectory interface {
	// ResolveDistance resolves the delivery distance in kilometers from
	// the operator's home location.
	ResolveDistance(ctx context.Context, code kernel.PostalCode) (float64, error)

	// ResolveAvailableVariants resolves the editions orderable at the
	// postal code. An unusable code yields an empty slice, not an error.
	ResolveAvailableVariants(ctx context.Context, plz string) ([]checkout.Variant, error)

	// ResolvePostalCodeInfo resolves the city behind a postal code, with
	// a generic fallback for codes outside the directory.
	ResolvePostalCodeInfo(ctx context.Context, plz string) (string, error)
}
