// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Contact       string
	VehicleType   string
	Status        int        `gorm:"index"`
	ActiveOrderID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var activeOrderID *uuid.UUID
	if id := aggregate.ActiveOrder(); id != nil {
		raw := id.Bytes()
		activeOrderID = &raw
	}

	return DriverDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Contact:       aggregate.Contact(),
		VehicleType:   aggregate.VehicleType(),
		Status:        int(aggregate.Status()),
		ActiveOrderID: activeOrderID,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var activeOrderID *kernel.UUID
	if dto.ActiveOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.ActiveOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		activeOrderID = &oID
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Contact,
		dto.VehicleType,
		driver.Status(dto.Status),
		activeOrderID,
		dto.CreatedAt,
	)
}
