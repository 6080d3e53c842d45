// Package services provides domain services that implement business
// operations spanning multiple domain concepts in the subscription shop.
//
// The package includes:
//   - PricingEngine: A domain service for distance resolution, delivery
//     eligibility and subscription price calculation
//
// Domain services hold pure business logic that does not naturally belong
// to a single aggregate root following Domain-Driven Design principles.
package services
