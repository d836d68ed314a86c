// Package services contains domain services that implement business logic
// spanning value objects and aggregates.
//
// QuoteCalculator is the single pricing authority: every price shown to a
// customer or snapshotted into an order is produced by it, from the same
// tariff-driven formula.
package services
