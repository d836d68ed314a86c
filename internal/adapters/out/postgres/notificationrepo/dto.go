// Package notificationrepo provides data transfer objects and mapping functions
// for notification persistence.
package notificationrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	Type        int
	Title       string
	Message     string
	Read        bool
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain entity to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		OrderID:     orderID,
		Type:        int(aggregate.Type()),
		Title:       aggregate.Title(),
		Message:     aggregate.Message(),
		Read:        aggregate.IsRead(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification domain entity using
// RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		orderID = &oID
	}

	return notification.RestoreNotification(
		id,
		recipientID,
		orderID,
		notification.Type(dto.Type),
		dto.Title,
		dto.Message,
		dto.Read,
		dto.CreatedAt,
	)
}
