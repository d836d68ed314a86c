package ports

import (
	"context"

	"dispatch/internal/core/domain/model/tariff"
)

// TariffRepository defines the persistence contract for tariff aggregates.
// At most one tariff is active at a time; pricing always reads the active one.
type TariffRepository interface {
	// Add persists a new tariff aggregate to storage.
	Add(ctx context.Context, aggregate *tariff.Tariff) error

	// GetActive retrieves the currently active tariff.
	// Returns an object-not-found error when no tariff is active, which the
	// quote and checkout flows surface as a service-unavailable condition.
	GetActive(ctx context.Context) (*tariff.Tariff, error)

	// DeactivateActive marks the currently active tariff inactive.
	// A no-op when no tariff is active. Callers pair this with Add in one
	// transaction to swap tariff versions atomically.
	DeactivateActive(ctx context.Context) error
}
