package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
)

// GetSyncAttemptsQueryHandler retrieves the CRM sync audit trail from the
// database.
type GetSyncAttemptsQueryHandler struct {
	db *gorm.DB
}

// NewGetSyncAttemptsQueryHandler creates a handler for sync audit queries.
// Requires a GORM database connection for query execution.
func NewGetSyncAttemptsQueryHandler(db *gorm.DB) GetSyncAttemptsQueryHandler {
	return GetSyncAttemptsQueryHandler{db: db}
}

// Handle executes the query to retrieve an order's sync attempts, oldest first.
func (h GetSyncAttemptsQueryHandler) Handle(
	ctx context.Context,
	query GetSyncAttemptsQuery,
) ([]GetSyncAttemptsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	attempts := make([]GetSyncAttemptsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			kind,
			payload,
			success,
			error,
			attempted_at
		FROM sync_attempts
		WHERE order_id = ?
		ORDER BY attempted_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSyncAttemptsQueryResponse
		var id uuid.UUID
		var orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Kind,
			&resp.Payload,
			&resp.Success,
			&resp.Error,
			&resp.AttemptedAt,
		)
		if err != nil {
			return nil, err
		}

		attemptID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = attemptID

		oID, oErr := kernel.UUIDFromBytes(orderID[:])
		if oErr != nil {
			return nil, oErr
		}
		resp.OrderID = oID

		attempts = append(attempts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attempts, nil
}
