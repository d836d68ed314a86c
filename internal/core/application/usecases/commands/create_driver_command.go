package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents onboarding a new driver into the fleet.
// New drivers start available.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        string
	contact     string
	vehicleType string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to onboard a driver.
func NewCreateDriverCommand(driverID kernel.UUID, name, contact, vehicleType string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setContact(contact),
		cmd.setVehicleType(vehicleType),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Contact returns the driver's phone number.
func (c CreateDriverCommand) Contact() string {
	return c.contact
}

// VehicleType returns the vehicle descriptor.
func (c CreateDriverCommand) VehicleType() string {
	return c.vehicleType
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("driver contact")
	}

	c.contact = contact
	return nil
}

func (c *CreateDriverCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}

	c.vehicleType = vehicleType
	return nil
}
