// Package syncrepo persists the CRM synchronization audit trail. Attempts are
// plain audit records, not domain aggregates: they are written outside the
// business transaction so a failed sync cannot roll back a committed order.
package syncrepo

import (
	"time"

	"github.com/google/uuid"
)

// SyncAttemptDTO represents one recorded CRM sync attempt.
type SyncAttemptDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Kind        string
	Payload     string
	Success     bool
	Error       string
	AttemptedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for sync attempt records.
func (SyncAttemptDTO) TableName() string {
	return "sync_attempts"
}
