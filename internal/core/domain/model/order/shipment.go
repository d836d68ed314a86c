package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created via NewShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the immutable value object describing what is being moved and
// where. Distance and weight are trusted positive inputs: distance comes from
// the external routing collaborator and is not recomputed here.
//
// Geocoordinates are optional; addresses are the authoritative shipment
// endpoints and coordinates only support map display and distance fallback.
type Shipment struct { //nolint:recvcheck //using for validation
	pickupAddress       string
	dropoffAddress      string
	pickupLocation      *kernel.Location
	dropoffLocation     *kernel.Location
	distanceMiles       float64
	weightLb            float64
	urgent              bool
	description         string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewShipment creates a validated Shipment.
//
// Validation rules:
//   - Pickup and dropoff addresses must be non-empty
//   - Distance and weight must be strictly positive
//   - Optional locations, when present, must be valid
//   - Description must be non-empty; special instructions may be empty
func NewShipment(
	pickupAddress string,
	dropoffAddress string,
	pickupLocation *kernel.Location,
	dropoffLocation *kernel.Location,
	distanceMiles float64,
	weightLb float64,
	urgent bool,
	description string,
	specialInstructions string,
) (Shipment, error) {
	s := Shipment{
		urgent:              urgent,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setPickupAddress(pickupAddress),
		s.setDropoffAddress(dropoffAddress),
		s.setPickupLocation(pickupLocation),
		s.setDropoffLocation(dropoffLocation),
		s.setDistanceMiles(distanceMiles),
		s.setWeightLb(weightLb),
		s.setDescription(description),
	); err != nil {
		return Shipment{}, err
	}

	return s, nil
}

// PickupAddress returns the pickup street address.
func (s Shipment) PickupAddress() string {
	return s.pickupAddress
}

// DropoffAddress returns the dropoff street address.
func (s Shipment) DropoffAddress() string {
	return s.dropoffAddress
}

// PickupLocation returns the optional pickup coordinates, nil when not geocoded.
func (s Shipment) PickupLocation() *kernel.Location {
	return s.pickupLocation
}

// DropoffLocation returns the optional dropoff coordinates, nil when not geocoded.
func (s Shipment) DropoffLocation() *kernel.Location {
	return s.dropoffLocation
}

// DistanceMiles returns the road distance between pickup and dropoff.
func (s Shipment) DistanceMiles() float64 {
	return s.distanceMiles
}

// WeightLb returns the package weight in pounds.
func (s Shipment) WeightLb() float64 {
	return s.weightLb
}

// IsUrgent reports whether the customer requested urgent delivery.
func (s Shipment) IsUrgent() bool {
	return s.urgent
}

// Description returns the package description.
func (s Shipment) Description() string {
	return s.description
}

// SpecialInstructions returns optional handling instructions, possibly empty.
func (s Shipment) SpecialInstructions() string {
	return s.specialInstructions
}

// Validate ensures the Shipment was created through NewShipment.
func (s Shipment) Validate() error {
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	s.pickupAddress = address
	return nil
}

func (s *Shipment) setDropoffAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoff address")
	}
	s.dropoffAddress = address
	return nil
}

func (s *Shipment) setPickupLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	s.pickupLocation = location
	return nil
}

func (s *Shipment) setDropoffLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	s.dropoffLocation = location
	return nil
}

func (s *Shipment) setDistanceMiles(distance float64) error {
	if distance <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%f is not greater than 0", distance))
	}
	s.distanceMiles = distance
	return nil
}

func (s *Shipment) setWeightLb(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%f is not greater than 0", weight))
	}
	s.weightLb = weight
	return nil
}

func (s *Shipment) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("package description")
	}
	s.description = description
	return nil
}
