package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an event is applied to an order whose
// current status is not the event's required source state. The order is left
// unchanged; callers surface this to the actor as "order already progressed".
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a strictly forward state machine: no transition skips a state
// and no transition reverses one.
//
// State transitions:
//
//	AwaitingPayment ──> Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered ──> Completed
//
// AwaitingPayment is the pre-payment staging state created at checkout start;
// orders stuck there past a timeout are removed by the abandoned-order cleanup
// job, outside the state machine.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingPayment is the staging status between checkout start and payment
	// confirmation. Abandoned orders in this status are cleaned up after a timeout.
	AwaitingPayment

	// Pending indicates payment is confirmed and the order waits for a dispatcher
	// to assign a driver.
	Pending

	// Assigned indicates a driver has been assigned and is heading to pickup.
	Assigned

	// PickedUp indicates the driver has collected the package.
	PickedUp

	// InTransit indicates the package is on its way to the dropoff address.
	InTransit

	// Delivered indicates proof of delivery has been submitted.
	Delivered

	// Completed indicates the invoice has been approved. This is the final state.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		AwaitingPayment: "awaiting-payment",
		Pending:         "pending",
		Assigned:        "assigned",
		PickedUp:        "picked-up",
		InTransit:       "in-transit",
		Delivered:       "delivered",
		Completed:       "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		AwaitingPayment: "awaiting-payment",
		Pending:         "pending",
		Assigned:        "assigned",
		PickedUp:        "picked-up",
		InTransit:       "in-transit",
		Delivered:       "delivered",
		Completed:       "completed",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the hyphenated wire name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsUnfinished reports whether an order in this status still occupies its
// driver. A driver holding an order in an unfinished status is busy.
func (s Status) IsUnfinished() bool {
	return s == Assigned || s == PickedUp || s == InTransit
}

// IsFinal reports whether the status admits no further transitions.
func (s Status) IsFinal() bool {
	return s == Completed
}

// ConfirmPayment transitions AwaitingPayment to Pending.
//
// Valid transitions:
//   - AwaitingPayment -> Pending (payment confirmed)
//
// Returns ErrInvalidTransition from any other status, including Pending itself:
// a re-delivered payment confirmation is rejected rather than double-applied.
func (s Status) ConfirmPayment() (Status, error) {
	if s != AwaitingPayment {
		return 0, invalidTransition(s, Pending)
	}
	return Pending, nil
}

// Assign transitions Pending to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (dispatcher assigns a driver)
//
// Reassignment is not allowed: an order already assigned must run its course.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, invalidTransition(s, Assigned)
	}
	return Assigned, nil
}

// PickUp transitions Assigned to PickedUp.
//
// Valid transitions:
//   - Assigned -> PickedUp (driver marks the package collected)
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return 0, invalidTransition(s, PickedUp)
	}
	return PickedUp, nil
}

// StartTransit transitions PickedUp to InTransit.
//
// Valid transitions:
//   - PickedUp -> InTransit (driver marks the package en route)
func (s Status) StartTransit() (Status, error) {
	if s != PickedUp {
		return 0, invalidTransition(s, InTransit)
	}
	return InTransit, nil
}

// Deliver transitions InTransit to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (driver submits proof of delivery)
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, invalidTransition(s, Delivered)
	}
	return Delivered, nil
}

// Complete transitions Delivered to Completed.
//
// Valid transitions:
//   - Delivered -> Completed (invoice approved, manually or by the auto-approve job)
//
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Delivered {
		return 0, invalidTransition(s, Completed)
	}
	return Completed, nil
}

// invalidTransition builds an ErrInvalidTransition with source and target context.
func invalidTransition(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
