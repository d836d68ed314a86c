package driver

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not created through
	// the NewDriver or RestoreDriver factory methods.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

	// ErrDriverIsNotAvailable is returned when an order is assigned to a driver
	// who is busy or offline.
	ErrDriverIsNotAvailable = errors.New("driver is not available for assignment")

	// ErrDriverIsNotBusy is returned when a release is applied to a driver who
	// holds no active order.
	ErrDriverIsNotBusy = errors.New("driver holds no active order")

	// ErrDriverHasActiveOrder is returned when a busy driver tries to go offline.
	ErrDriverHasActiveOrder = errors.New("driver cannot go offline with an active order")
)

// Driver represents a courier in the dispatch fleet. It is the aggregate root
// managing the driver's availability and the single-active-order invariant.
//
// Driver follows these invariants:
//   - A driver is Busy if and only if activeOrderID is set
//   - A driver holds at most one unfinished order at a time
//   - A busy driver cannot go offline; the order must finish first
type Driver struct {
	// id is the unique identifier for the driver
	id kernel.UUID

	// name is the driver's display name
	name string

	// contact is the driver's phone number for dispatcher coordination
	contact string

	// vehicleType is a free-form vehicle descriptor, e.g. "cargo-van"
	vehicleType string

	// status is the driver's current availability
	status Status

	// activeOrderID is the single unfinished order the driver holds (nil when not busy)
	activeOrderID *kernel.UUID

	// createdAt is when the driver was onboarded
	createdAt time.Time

	// isConstructed ensures the driver was created via a constructor
	isConstructed bool
}

// NewDriver creates a newly onboarded Driver in Available status.
//
// Parameters:
//   - id: Unique identifier for the driver
//   - name: Display name (must be non-empty)
//   - contact: Phone number (must be non-empty)
//   - vehicleType: Vehicle descriptor (must be non-empty)
//   - createdAt: Onboarding time
func NewDriver(id kernel.UUID, name, contact, vehicleType string, createdAt time.Time) (*Driver, error) {
	d := &Driver{
		status:        Available,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setContact(contact),
		d.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	name, contact, vehicleType string,
	status Status,
	activeOrderID *kernel.UUID,
	createdAt time.Time,
) (*Driver, error) {
	d := &Driver{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setContact(contact),
		d.setVehicleType(vehicleType),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	if activeOrderID != nil {
		if err := activeOrderID.Validate(); err != nil {
			return nil, err
		}
		d.activeOrderID = activeOrderID
	}

	if (d.status == Busy) != (d.activeOrderID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("driver state",
			fmt.Errorf("status %s is inconsistent with active order binding", d.status))
	}

	return d, nil
}

// Validate ensures the Driver instance was properly constructed through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Contact returns the driver's phone number.
func (d *Driver) Contact() string {
	return d.contact
}

// VehicleType returns the vehicle descriptor.
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// Status returns the driver's current availability.
func (d *Driver) Status() Status {
	return d.status
}

// ActiveOrder returns the unfinished order the driver holds, nil when not busy.
func (d *Driver) ActiveOrder() *kernel.UUID {
	return d.activeOrderID
}

// CreatedAt returns the onboarding time.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// IsAvailable reports whether the driver can take a new order.
func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// Assign binds an order to the driver and flips the status to Busy.
//
// Returns ErrDriverIsNotAvailable without mutating state if the driver is
// busy or offline.
func (d *Driver) Assign(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if d.status != Available {
		return fmt.Errorf("%w: driver %s is %s", ErrDriverIsNotAvailable, d.id, d.status)
	}

	d.status = Busy
	d.activeOrderID = &orderID
	return nil
}

// Release clears the active order and flips the status back to Available.
// Applied when the held order is delivered.
//
// Returns ErrDriverIsNotBusy if the driver holds no order.
func (d *Driver) Release() error {
	if d.status != Busy {
		return fmt.Errorf("%w: driver %s is %s", ErrDriverIsNotBusy, d.id, d.status)
	}

	d.status = Available
	d.activeOrderID = nil
	return nil
}

// GoOffline takes the driver off shift.
//
// Returns ErrDriverHasActiveOrder if the driver is busy: the order must
// finish before the driver can leave.
func (d *Driver) GoOffline() error {
	if d.status == Busy {
		return fmt.Errorf("%w: driver %s holds order %s", ErrDriverHasActiveOrder, d.id, d.activeOrderID)
	}

	d.status = Offline
	return nil
}

// GoOnline puts the driver back on shift as Available.
// A no-op for a driver who is already available or busy.
func (d *Driver) GoOnline() {
	if d.status == Offline {
		d.status = Available
	}
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}

func (d *Driver) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("driver contact")
	}
	d.contact = contact
	return nil
}

func (d *Driver) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
