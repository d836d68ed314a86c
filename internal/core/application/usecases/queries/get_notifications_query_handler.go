package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
)

// GetNotificationsQueryHandler retrieves a user's notifications from the database.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification queries.
// Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the user's notifications, newest first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			type,
			title,
			message,
			read,
			created_at
		FROM notifications
		WHERE recipient_id = ?
	`
	if query.UnreadOnly() {
		sql += ` AND NOT read`
	}
	sql += ` ORDER BY created_at DESC`

	notifications := make([]GetNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetNotificationsQueryResponse
		var id uuid.UUID
		var orderID *uuid.UUID
		var typ int

		err = rows.Scan(
			&id,
			&orderID,
			&typ,
			&resp.Title,
			&resp.Message,
			&resp.Read,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID
		resp.Type = notification.Type(typ).String()

		if orderID != nil {
			oID, oErr := kernel.UUIDFromBytes((*orderID)[:])
			if oErr != nil {
				return nil, oErr
			}
			resp.OrderID = &oID
		}

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
