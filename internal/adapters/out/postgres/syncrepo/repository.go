package syncrepo

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// SyncAttempt carries the outcome of one CRM sync call for auditing.
type SyncAttempt struct {
	OrderID     kernel.UUID
	Kind        string
	Payload     string
	Success     bool
	Error       string
	AttemptedAt time.Time
}

// GormSyncAttemptRepository records CRM sync attempts using GORM.
type GormSyncAttemptRepository struct {
	db *gorm.DB
}

// NewGormSyncAttemptRepository creates a new GORM sync attempt repository.
func NewGormSyncAttemptRepository(db *gorm.DB) *GormSyncAttemptRepository {
	return &GormSyncAttemptRepository{db: db}
}

// Add appends one attempt to the audit trail.
func (r *GormSyncAttemptRepository) Add(ctx context.Context, attempt SyncAttempt) error {
	dto := SyncAttemptDTO{
		ID:          kernel.NewUUID().Bytes(),
		OrderID:     attempt.OrderID.Bytes(),
		Kind:        attempt.Kind,
		Payload:     attempt.Payload,
		Success:     attempt.Success,
		Error:       attempt.Error,
		AttemptedAt: attempt.AttemptedAt,
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
