// Package ports defines repository and outbound collaborator interfaces for
// the dispatch domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate without a
	// status precondition. Used when the caller holds no racing writers,
	// e.g. attaching data that does not move the state machine.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists changes to an existing order aggregate only if
	// its stored status still equals expected. When another writer advanced
	// the order first, no row is touched and a version error is returned,
	// letting the caller surface "order already progressed" to the actor.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lifecycle state and proof of delivery.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// DeleteAllAwaitingPaymentBefore removes orders abandoned at checkout:
	// orders still in AwaitingPayment status created before the cutoff.
	// Returns the number of orders removed.
	DeleteAllAwaitingPaymentBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
