package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tariff"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// GetQuoteQueryHandler prices prospective shipments.
// Reads the active tariff with direct SQL and runs the shared pricing
// formula, so the quote matches what checkout would snapshot.
type GetQuoteQueryHandler struct {
	db         *gorm.DB
	calculator services.QuoteCalculator
}

// NewGetQuoteQueryHandler creates a handler for quote queries.
// Requires a GORM database connection for query execution.
func NewGetQuoteQueryHandler(db *gorm.DB) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{
		db:         db,
		calculator: services.NewQuoteCalculator(),
	}
}

// Handle executes the quote query against the active tariff.
// Returns an object-not-found error when no tariff is active; the transport
// layer surfaces that as quoting being unavailable.
func (h GetQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetQuoteQuery,
) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	activeTariff, err := h.getActiveTariff(ctx)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	breakdown, err := h.calculator.Calculate(
		query.DistanceMiles(), query.WeightLb(), query.IsUrgent(), activeTariff)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	return GetQuoteQueryResponse{
		BaseRateCents:        breakdown.BaseRate().Cents(),
		MileageChargeCents:   breakdown.MileageCharge().Cents(),
		WeightSurchargeCents: breakdown.WeightSurcharge().Cents(),
		UrgentSurchargeCents: breakdown.UrgentSurcharge().Cents(),
		TotalPriceCents:      breakdown.TotalPrice().Cents(),
	}, nil
}

func (h GetQuoteQueryHandler) getActiveTariff(ctx context.Context) (*tariff.Tariff, error) {
	var (
		id                  uuid.UUID
		baseRateCents       int64
		perMileRateCents    int64
		perPoundRateCents   int64
		heavyThresholdLb    float64
		heavySurchargeCents int64
		urgentPercent       int
		createdAt           time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			base_rate_cents,
			per_mile_rate_cents,
			per_pound_rate_cents,
			heavy_threshold_lb,
			heavy_surcharge_cents,
			urgent_percent,
			created_at
		FROM tariffs
		WHERE active
		LIMIT 1
	`).Row()

	err := row.Scan(&id, &baseRateCents, &perMileRateCents, &perPoundRateCents,
		&heavyThresholdLb, &heavySurchargeCents, &urgentPercent, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active tariff", nil)
		}
		return nil, err
	}

	tariffID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	baseRate, err := kernel.NewMoneyFromCents(baseRateCents)
	if err != nil {
		return nil, err
	}
	perMileRate, err := kernel.NewMoneyFromCents(perMileRateCents)
	if err != nil {
		return nil, err
	}
	perPoundRate, err := kernel.NewMoneyFromCents(perPoundRateCents)
	if err != nil {
		return nil, err
	}
	heavySurcharge, err := kernel.NewMoneyFromCents(heavySurchargeCents)
	if err != nil {
		return nil, err
	}

	return tariff.RestoreTariff(tariffID, baseRate, perMileRate, perPoundRate,
		heavyThresholdLb, heavySurcharge, urgentPercent, true, createdAt)
}
