// Package tariffrepo provides data transfer objects and mapping functions for tariff persistence.
package tariffrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tariff"

	"github.com/google/uuid"
)

// TariffDTO represents the database structure for persisting tariff aggregates.
// Monetary rates are stored as integer cents.
type TariffDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	BaseRateCents       int64
	PerMileRateCents    int64
	PerPoundRateCents   int64
	HeavyThresholdLb    float64
	HeavySurchargeCents int64
	UrgentPercent       int
	Active              bool `gorm:"index"`
	CreatedAt           time.Time
}

// TableName specifies the database table name for tariff entities.
func (TariffDTO) TableName() string {
	return "tariffs"
}

// fromDomain converts a tariff domain aggregate to its database representation.
func fromDomain(aggregate *tariff.Tariff) TariffDTO {
	return TariffDTO{
		ID:                  aggregate.ID().Bytes(),
		BaseRateCents:       aggregate.BaseRate().Cents(),
		PerMileRateCents:    aggregate.PerMileRate().Cents(),
		PerPoundRateCents:   aggregate.PerPoundRate().Cents(),
		HeavyThresholdLb:    aggregate.HeavyThresholdLb(),
		HeavySurchargeCents: aggregate.HeavySurcharge().Cents(),
		UrgentPercent:       aggregate.UrgentPercent(),
		Active:              aggregate.IsActive(),
		CreatedAt:           aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a tariff domain aggregate using RestoreTariff.
func toDomain(dto TariffDTO) (*tariff.Tariff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	baseRate, err := kernel.NewMoneyFromCents(dto.BaseRateCents)
	if err != nil {
		return nil, err
	}

	perMileRate, err := kernel.NewMoneyFromCents(dto.PerMileRateCents)
	if err != nil {
		return nil, err
	}

	perPoundRate, err := kernel.NewMoneyFromCents(dto.PerPoundRateCents)
	if err != nil {
		return nil, err
	}

	heavySurcharge, err := kernel.NewMoneyFromCents(dto.HeavySurchargeCents)
	if err != nil {
		return nil, err
	}

	return tariff.RestoreTariff(
		id,
		baseRate,
		perMileRate,
		perPoundRate,
		dto.HeavyThresholdLb,
		heavySurcharge,
		dto.UrgentPercent,
		dto.Active,
		dto.CreatedAt,
	)
}
