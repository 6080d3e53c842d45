// Package checkout contains the domain model of the subscription purchase
// workflow: the ordered step machine with entry guards, the mutable order
// draft that accumulates everything the customer has entered, and the
// immutable order record produced at submission time.
//
// The Draft is the single source of truth for an in-progress purchase. It
// is mutated exclusively through named update operations with shallow
// merge semantics, so each workflow step can update only the fields it
// owns without clobbering siblings. The Record is the terminal snapshot
// handed to persistence; it is never mutated after creation.
package checkout
