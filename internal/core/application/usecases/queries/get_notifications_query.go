package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a user's in-app notifications, newest
// first, optionally restricted to unread ones.
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	unreadOnly  bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a user's notifications.
func NewGetNotificationsQuery(recipientID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	q := GetNotificationsQuery{
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}

	if err := q.setRecipientID(recipientID); err != nil {
		return GetNotificationsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// RecipientID returns the user whose notifications are requested.
func (q GetNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// UnreadOnly reports whether read notifications are filtered out.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

func (q *GetNotificationsQuery) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	q.recipientID = recipientID
	return nil
}

// GetNotificationsQueryResponse represents a notification in the read model.
type GetNotificationsQueryResponse struct {
	ID        kernel.UUID
	OrderID   *kernel.UUID
	Type      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
