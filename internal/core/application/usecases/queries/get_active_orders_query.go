package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all orders currently moving through the
// lifecycle: everything paid for but not yet completed. Awaiting-payment
// leftovers and closed orders are excluded.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve all active orders.
// This is a parameterless query that fetches the dispatcher work queue.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents an active order in the read model.
type GetActiveOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	Status          string
	CustomerContact string
	PickupAddress   string
	DropoffAddress  string
	DriverID        *kernel.UUID
	Urgent          bool
	TotalPriceCents int64
	CreatedAt       time.Time
}
