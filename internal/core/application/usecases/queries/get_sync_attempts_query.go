package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetSyncAttemptsQueryIsNotConstructed = errors.New(
	"GetSyncAttemptsQuery must be created via NewGetSyncAttemptsQuery constructor",
)

// GetSyncAttemptsQuery retrieves the CRM synchronization audit trail for a
// single order, oldest attempt first.
type GetSyncAttemptsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSyncAttemptsQuery creates a query for an order's sync audit trail.
func NewGetSyncAttemptsQuery(orderID kernel.UUID) (GetSyncAttemptsQuery, error) {
	q := GetSyncAttemptsQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetSyncAttemptsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSyncAttemptsQuery) Validate() error {
	return q.guard.Validate(ErrGetSyncAttemptsQueryIsNotConstructed)
}

// OrderID returns the order whose sync attempts are requested.
func (q GetSyncAttemptsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetSyncAttemptsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetSyncAttemptsQueryResponse represents one recorded CRM sync attempt.
type GetSyncAttemptsQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Kind        string
	Payload     string
	Success     bool
	Error       string
	AttemptedAt time.Time
}
