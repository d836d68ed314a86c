package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a checkout request: a customer accepts a
// quote and starts an order. The distance has already been resolved by the
// caller (routing service or straight-line fallback); the command carries the
// final pricing inputs.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    OrderID:         kernel.NewUUID(),
//	    CustomerID:      customerID,
//	    CustomerContact: "+1-415-555-0100",
//	    PickupAddress:   "1 Market St",
//	    DropoffAddress:  "300 Broadway",
//	    DistanceMiles:   12.5,
//	    WeightLb:        40,
//	    Urgent:          true,
//	    Description:     "two boxes of server parts",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	customerID          kernel.UUID
	customerContact     string
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

// CreateOrderParams carries the checkout inputs for NewCreateOrderCommand.
type CreateOrderParams struct {
	OrderID             kernel.UUID
	CustomerID          kernel.UUID
	CustomerContact     string
	PickupAddress       string
	DropoffAddress      string
	PickupLocation      *kernel.Location
	DropoffLocation     *kernel.Location
	DistanceMiles       float64
	WeightLb            float64
	Urgent              bool
	Description         string
	SpecialInstructions string
}

// NewCreateOrderCommand creates a command to start an order at checkout.
// Validates identifiers, addresses, and that distance and weight are positive.
func NewCreateOrderCommand(params CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		pickupLocation:      params.PickupLocation,
		dropoffLocation:     params.DropoffLocation,
		urgent:              params.Urgent,
		specialInstructions: params.SpecialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(params.OrderID),
		cmd.setCustomerID(params.CustomerID),
		cmd.setCustomerContact(params.CustomerContact),
		cmd.setPickupAddress(params.PickupAddress),
		cmd.setDropoffAddress(params.DropoffAddress),
		cmd.setDistanceMiles(params.DistanceMiles),
		cmd.setWeightLb(params.WeightLb),
		cmd.setDescription(params.Description),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerContact returns the customer's contact details.
func (c CreateOrderCommand) CustomerContact() string {
	return c.customerContact
}

// PickupAddress returns the pickup street address.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns the dropoff street address.
func (c CreateOrderCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// PickupLocation returns the optional pickup coordinates.
func (c CreateOrderCommand) PickupLocation() *kernel.Location {
	return c.pickupLocation
}

// DropoffLocation returns the optional dropoff coordinates.
func (c CreateOrderCommand) DropoffLocation() *kernel.Location {
	return c.dropoffLocation
}

// DistanceMiles returns the resolved road distance.
func (c CreateOrderCommand) DistanceMiles() float64 {
	return c.distanceMiles
}

// WeightLb returns the package weight in pounds.
func (c CreateOrderCommand) WeightLb() float64 {
	return c.weightLb
}

// IsUrgent reports whether urgent delivery was requested.
func (c CreateOrderCommand) IsUrgent() bool {
	return c.urgent
}

// Description returns the package description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// SpecialInstructions returns optional handling instructions.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCustomerContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("customer contact")
	}

	c.customerContact = contact
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}

	c.pickupAddress = address
	return nil
}

func (c *CreateOrderCommand) setDropoffAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoff address")
	}

	c.dropoffAddress = address
	return nil
}

func (c *CreateOrderCommand) setDistanceMiles(distance float64) error {
	if distance <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%f is not greater than 0", distance))
	}

	c.distanceMiles = distance
	return nil
}

func (c *CreateOrderCommand) setWeightLb(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%f is not greater than 0", weight))
	}

	c.weightLb = weight
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("package description")
	}

	c.description = description
	return nil
}
