package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// GetAllDriversQueryHandler retrieves all driver information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers, sorted by name.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			contact,
			vehicle_type,
			status,
			active_order_id
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllDriversQueryResponse
		var id uuid.UUID
		var activeOrderID *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Contact,
			&resp.VehicleType,
			&status,
			&activeOrderID,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID
		resp.Status = driver.Status(status).String()

		if activeOrderID != nil {
			oID, oErr := kernel.UUIDFromBytes((*activeOrderID)[:])
			if oErr != nil {
				return nil, oErr
			}
			resp.ActiveOrderID = &oID
		}

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
