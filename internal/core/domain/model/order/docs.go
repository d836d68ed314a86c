// Package order provides domain entities and business logic for order
// management in the dispatch system. It implements the Order aggregate root
// with lifecycle management and strictly forward state transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, pricing snapshot, and lifecycle
//   - Status: A forward-only state machine for the delivery workflow
//   - Shipment: The immutable description of what is moved and its pricing inputs
//   - ProofOfDelivery: Evidence attached at the delivered transition
//
// Key business rules:
//   - AwaitingPayment -> Pending -> Assigned -> PickedUp -> InTransit -> Delivered -> Completed
//   - No transition skips or reverses a state; illegal events fail with
//     ErrInvalidTransition and leave the order unchanged
//   - Transition timestamps are set exactly once, when their transition occurs
//   - The price breakdown is snapshotted at creation and never recalculated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
