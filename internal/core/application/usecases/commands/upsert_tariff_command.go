package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tariff"
	"dispatch/internal/pkg/guard"
)

var ErrUpsertTariffCommandIsNotConstructed = errors.New(
	"UpsertTariffCommand must be created via NewUpsertTariffCommand constructor",
)

// UpsertTariffCommand represents an administrator publishing a new tariff
// version. The previous active tariff is deactivated and the new one becomes
// active in the same transaction; orders priced under the old tariff keep
// their snapshotted breakdowns.
type UpsertTariffCommand struct { //nolint:recvcheck //using for validation
	newTariff *tariff.Tariff

	guard guard.ConstructorGuard
}

// NewUpsertTariffCommand creates a command to publish a new tariff version.
// The tariff parameters are validated by the tariff constructor.
func NewUpsertTariffCommand(
	tariffID kernel.UUID,
	baseRate, perMileRate, perPoundRate kernel.Money,
	heavyThresholdLb float64,
	heavySurcharge kernel.Money,
	urgentPercent int,
) (UpsertTariffCommand, error) {
	newTariff, err := tariff.NewTariff(
		tariffID, baseRate, perMileRate, perPoundRate,
		heavyThresholdLb, heavySurcharge, urgentPercent,
		time.Now().UTC(),
	)
	if err != nil {
		return UpsertTariffCommand{}, err
	}

	return UpsertTariffCommand{
		newTariff: newTariff,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertTariffCommand) Validate() error {
	return c.guard.Validate(ErrUpsertTariffCommandIsNotConstructed)
}

// Tariff returns the tariff version to publish.
func (c UpsertTariffCommand) Tariff() *tariff.Tariff {
	return c.newTariff
}
