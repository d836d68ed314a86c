package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tariff"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrProofAlreadyAttached is returned when a proof of delivery is submitted
	// for an order that already carries one.
	ErrProofAlreadyAttached = errors.New("proof of delivery is already attached")
)

// Order represents a delivery order in the system. It is the aggregate root that manages
// the order lifecycle from checkout through driver assignment to invoice completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty human-facing order number
//   - The price breakdown is snapshotted at creation and never recalculated
//   - Status transitions follow the strictly forward state machine in Status
//   - Each transition timestamp is set exactly once, when its transition occurs
//   - A driver is bound at the assigned transition and never replaced afterwards
//   - Proof of delivery is attached exactly once, at the delivered transition
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-facing unique reference, e.g. "ORD-5A2F91C0"
	orderNumber string

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// customerContact is the customer's phone or email for driver coordination
	customerContact string

	// driverID is the assigned driver's ID (nil until assignment)
	driverID *kernel.UUID

	// shipment describes what is moved, between which addresses, and its pricing inputs
	shipment Shipment

	// breakdown is the immutable price breakdown issued at quote time
	breakdown tariff.PriceBreakdown

	// status is the current state in the order lifecycle
	status Status

	// proof is the evidence attached at the delivered transition (nil before)
	proof *ProofOfDelivery

	// transition timestamps, each set exactly once when its transition occurs
	createdAt   time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time
	completedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in AwaitingPayment status with its price
// breakdown attached. This is the checkout entry point: the breakdown has been
// calculated against the active tariff and is snapshotted into the order.
//
// Parameters:
//   - id: Unique identifier for the order
//   - orderNumber: Human-facing unique reference
//   - customerID: The ordering customer
//   - customerContact: Customer contact details (must be non-empty)
//   - shipment: Validated shipment details
//   - breakdown: The issued price breakdown
//   - createdAt: Checkout time
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	customerContact string,
	shipment Shipment,
	breakdown tariff.PriceBreakdown,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        AwaitingPayment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setCustomerContact(customerContact),
		o.setShipment(shipment),
		o.setBreakdown(breakdown),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// reconstruction from storage.
type RestoreOrderParams struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerID      kernel.UUID
	CustomerContact string
	DriverID        *kernel.UUID
	Shipment        Shipment
	Breakdown       tariff.PriceBreakdown
	Status          Status
	Proof           *ProofOfDelivery
	CreatedAt       time.Time
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	InTransitAt     *time.Time
	DeliveredAt     *time.Time
	CompletedAt     *time.Time
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it restores the full lifecycle state, including status,
// driver binding, proof of delivery, and transition timestamps.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		createdAt:     params.CreatedAt,
		assignedAt:    params.AssignedAt,
		pickedUpAt:    params.PickedUpAt,
		inTransitAt:   params.InTransitAt,
		deliveredAt:   params.DeliveredAt,
		completedAt:   params.CompletedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setOrderNumber(params.OrderNumber),
		o.setCustomerID(params.CustomerID),
		o.setCustomerContact(params.CustomerContact),
		o.setShipment(params.Shipment),
		o.setBreakdown(params.Breakdown),
		o.setStatus(params.Status),
	); err != nil {
		return nil, err
	}

	if params.DriverID != nil {
		if err := params.DriverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = params.DriverID
	}

	if params.Proof != nil {
		if err := params.Proof.Validate(); err != nil {
			return nil, err
		}
		o.proof = params.Proof
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing unique reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerContact returns the customer's contact details.
func (o *Order) CustomerContact() string {
	return o.customerContact
}

// Driver returns the assigned driver's ID, nil until assignment.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Shipment returns the shipment details.
func (o *Order) Shipment() Shipment {
	return o.shipment
}

// Breakdown returns the price breakdown issued at quote time.
func (o *Order) Breakdown() tariff.PriceBreakdown {
	return o.breakdown
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Proof returns the attached proof of delivery, nil before the delivered transition.
func (o *Order) Proof() *ProofOfDelivery {
	return o.proof
}

// CreatedAt returns the checkout time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignedAt returns when the driver was assigned, nil if not yet.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// PickedUpAt returns when the package was collected, nil if not yet.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// InTransitAt returns when transit started, nil if not yet.
func (o *Order) InTransitAt() *time.Time {
	return o.inTransitAt
}

// DeliveredAt returns when proof of delivery was submitted, nil if not yet.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CompletedAt returns when the invoice was approved, nil if not yet.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// ConfirmPayment applies the payment-confirmed event, moving the order from
// AwaitingPayment to Pending. The order becomes visible to dispatchers.
//
// Returns ErrInvalidTransition without mutating state if the order is not
// awaiting payment.
func (o *Order) ConfirmPayment() error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Assign binds a driver to the order and moves it from Pending to Assigned.
// The assignedAt timestamp is set exactly once. Driver availability is the
// driver aggregate's concern; the caller must update both aggregates within
// one transaction.
//
// Returns ErrInvalidTransition without mutating state if the order is not pending.
func (o *Order) Assign(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	setTimestampOnce(&o.assignedAt, at)
	return nil
}

// MarkPickedUp applies the driver's picked-up event, moving Assigned to PickedUp.
func (o *Order) MarkPickedUp(at time.Time) error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	setTimestampOnce(&o.pickedUpAt, at)
	return nil
}

// MarkInTransit applies the driver's in-transit event, moving PickedUp to InTransit.
func (o *Order) MarkInTransit(at time.Time) error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	setTimestampOnce(&o.inTransitAt, at)
	return nil
}

// Deliver attaches proof of delivery and moves InTransit to Delivered.
// The proof is attached exactly once; the order becomes eligible for invoice
// approval and the driver is released by the caller in the same transaction.
func (o *Order) Deliver(proof ProofOfDelivery, at time.Time) error {
	if err := proof.Validate(); err != nil {
		return err
	}
	if o.proof != nil {
		return ErrProofAlreadyAttached
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.proof = &proof
	setTimestampOnce(&o.deliveredAt, at)
	return nil
}

// Complete applies invoice approval, moving Delivered to Completed.
// This is the final transition in the order lifecycle.
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	setTimestampOnce(&o.completedAt, at)
	return nil
}

// setTimestampOnce sets a transition timestamp only if it has never been set.
// Re-entering a state must not overwrite an existing timestamp.
func setTimestampOnce(field **time.Time, at time.Time) {
	if *field == nil {
		*field = &at
	}
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the human-facing reference.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomerID validates and sets the ordering customer.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setCustomerContact validates and sets the customer contact details.
func (o *Order) setCustomerContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("customer contact")
	}
	o.customerContact = contact
	return nil
}

// setShipment validates and sets the shipment details.
func (o *Order) setShipment(shipment Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}
	o.shipment = shipment
	return nil
}

// setBreakdown validates and sets the issued price breakdown.
func (o *Order) setBreakdown(breakdown tariff.PriceBreakdown) error {
	if err := breakdown.Validate(); err != nil {
		return err
	}
	o.breakdown = breakdown
	return nil
}

// setStatus validates and sets the restored status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
