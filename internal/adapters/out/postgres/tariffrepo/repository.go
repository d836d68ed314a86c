package tariffrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tariff"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB, tracker aggregateTracker) *GormTariffRepository {
	return &GormTariffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tariff to the database.
func (r *GormTariffRepository) Add(ctx context.Context, aggregate *tariff.Tariff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActive retrieves the currently active tariff.
func (r *GormTariffRepository) GetActive(ctx context.Context) (*tariff.Tariff, error) {
	var dto TariffDTO
	if err := r.db.WithContext(ctx).First(&dto, "active").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active tariff", nil)
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeactivateActive marks the currently active tariff inactive. A no-op when
// no tariff is active.
func (r *GormTariffRepository) DeactivateActive(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&TariffDTO{}).
		Where("active").
		Update("active", false).Error
}
