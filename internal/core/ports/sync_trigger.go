package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// SyncPayload is the closed set of CRM sync event bodies. Each lifecycle
// event that the CRM cares about has its own variant, so the sync adapter
// serializes typed data instead of pre-rendered strings. Payload fields are
// wire types: identifiers and statuses are carried as their string forms so
// the marshalled body and the audit row stay readable.
type SyncPayload interface {
	// Kind returns the wire event name recorded in the sync audit log.
	Kind() string
}

// OrderCreatedPayload is sent when payment is confirmed and the order enters
// the dispatch queue. It carries enough to upsert the customer and the order
// record on the CRM side.
type OrderCreatedPayload struct {
	OrderNumber     string    `json:"order_number"`
	CustomerID      string    `json:"customer_id"`
	CustomerContact string    `json:"customer_contact"`
	PickupAddress   string    `json:"pickup_address"`
	DropoffAddress  string    `json:"dropoff_address"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

func (OrderCreatedPayload) Kind() string { return "order.created" }

// StatusChangedPayload is sent on every forward transition after creation.
// Status carries the hyphenated wire name, not the numeric enum.
type StatusChangedPayload struct {
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	ChangedAt   time.Time `json:"changed_at"`
}

func (StatusChangedPayload) Kind() string { return "order.status-changed" }

// OrderCompletedPayload is sent when the invoice is approved, closing the
// order on the CRM side.
type OrderCompletedPayload struct {
	OrderNumber     string    `json:"order_number"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CompletedAt     time.Time `json:"completed_at"`
}

func (OrderCompletedPayload) Kind() string { return "order.completed" }

// SyncEvent binds a payload to the order it describes.
type SyncEvent struct {
	OrderID kernel.UUID
	Payload SyncPayload
}

// SyncTrigger pushes order lifecycle events to the external CRM.
//
// Sync is best effort and fire-and-forget: a CRM outage must never fail or
// delay the business operation that produced the event. Implementations
// record every attempt and its outcome in the sync audit log, so failed
// pushes are visible to the reconciliation job. Sync is called after the
// owning transaction commits.
type SyncTrigger interface {
	// Sync delivers the event to the CRM and records the attempt.
	// Failures are audited and swallowed.
	Sync(ctx context.Context, event SyncEvent)
}
