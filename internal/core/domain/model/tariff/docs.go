// Package tariff provides the pricing aggregate and the immutable price
// breakdown value object for the dispatch system.
//
// The package includes:
//   - Tariff: The administrator-edited set of pricing parameters; at most one
//     tariff is active for new calculations at any time
//   - PriceBreakdown: Itemized charges (base, mileage, weight, urgent) summing
//     to a total, snapshotted into an order when a quote is accepted
//
// Key business rules:
//   - Editing pricing creates a new active tariff and deactivates the old one
//   - Issued breakdowns are never recalculated when the tariff changes
//   - The total always equals the sum of the component charges
package tariff
