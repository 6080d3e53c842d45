// Package geodir adapts the static postal code directory behind the
// GeoDirectory port. Lookups are in-process table scans, so every
// operation succeeds for well-formed input; the error returns exist for
// alternative implementations backed by a remote directory service.
package geodir

import (
	"context"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/domain/services"
	"aboshop/internal/core/ports"
)

// StaticDirectory resolves delivery geography from the built-in postal
// code tables.
type StaticDirectory struct {
	engine services.PricingEngine
}

// NewStaticDirectory creates a directory backed by the built-in tables.
func NewStaticDirectory(engine services.PricingEngine) *StaticDirectory {
	return &StaticDirectory{engine: engine}
}

var _ ports.GeoDirectory = (*StaticDirectory)(nil)

// ResolveDistance resolves the delivery distance in kilometers from the
// operator's home location.
func (d *StaticDirectory) ResolveDistance(_ context.Context, code kernel.PostalCode) (float64, error) {
	return d.engine.ResolveDistance(code), nil
}

// ResolveAvailableVariants resolves the editions orderable at the postal code.
func (d *StaticDirectory) ResolveAvailableVariants(_ context.Context, plz string) ([]checkout.Variant, error) {
	return d.engine.ResolveAvailableVariants(plz), nil
}

// ResolvePostalCodeInfo resolves the city behind a postal code.
func (d *StaticDirectory) ResolvePostalCodeInfo(_ context.Context, plz string) (string, error) {
	return d.engine.ResolveCity(plz), nil
}
