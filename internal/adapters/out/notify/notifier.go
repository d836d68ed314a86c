// Package notify persists in-app notifications emitted on order lifecycle
// events. Emission is best effort: a failed write is logged and swallowed so
// it never disturbs the committed business operation.
package notify

import (
	"context"
	"log/slog"

	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GormNotifier stores notifications in the database. Implements ports.Notifier.
type GormNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormNotifier creates a database-backed notifier.
func NewGormNotifier(db *gorm.DB, logger *slog.Logger) *GormNotifier {
	return &GormNotifier{db: db, logger: logger}
}

// Notify records the notification for its recipient. Failures are logged
// and swallowed.
func (n *GormNotifier) Notify(ctx context.Context, aggregate *notification.Notification) {
	repo := notificationrepo.NewGormNotificationRepository(n.db, noopTracker{})

	if err := repo.Add(ctx, aggregate); err != nil {
		n.logger.Warn("failed to store notification",
			"recipient_id", aggregate.RecipientID().String(),
			"title", aggregate.Title(),
			"error", err)
	}
}

// noopTracker satisfies the repository's tracker dependency. Notifications
// are written outside any unit of work, so there is nothing to track.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
