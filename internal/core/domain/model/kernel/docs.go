// Package kernel holds the primitive value objects shared by every aggregate
// in the dispatch domain:
//
//   - UUID: aggregate identifier wrapping google/uuid with zero-value rejection
//   - Location: validated geographic coordinates with haversine distance
//   - Money: non-negative amount in integer cents with rounding arithmetic
//
// All three are immutable, compared by value, and constructed only through
// their factory functions so an invalid instance cannot enter the domain.
package kernel
