package ports

import (
	"context"

	"dispatch/internal/core/domain/model/notification"
)

// Notifier emits in-app notifications on order lifecycle events.
//
// Emission is best effort and fire-and-forget: implementations must never
// return an error that callers would propagate into the business operation.
// Notify is called after the owning transaction commits, so a notification
// can only reference state that is durably stored.
type Notifier interface {
	// Notify records the notification for its recipient. Failures are
	// logged by the implementation and swallowed.
	Notify(ctx context.Context, n *notification.Notification)
}
