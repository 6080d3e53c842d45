// Package kernel provides core domain primitives used throughout the
// subscription checkout model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - PostalCode: a validated five-digit postal code, the key for all
//     eligibility and distance lookups
//   - Money: a euro amount with explicit two-decimal rounding
//
// These primitives enforce domain invariants at construction time and are
// immutable, making them safe for concurrent use.
package kernel
