package tariff

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// UrgentPercentMin is the lowest allowed urgent-delivery surcharge percentage.
	UrgentPercentMin = 0
	// UrgentPercentMax is the highest allowed urgent-delivery surcharge percentage.
	UrgentPercentMax = 100
)

// ErrTariffIsNotConstructed is returned when a Tariff instance was not created
// through the NewTariff or RestoreTariff factory methods.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff or RestoreTariff constructor")

// Tariff is the aggregate holding the active set of pricing parameters used to
// compute a price breakdown for a shipment.
//
// Tariff follows these invariants:
//   - All monetary rates are valid non-negative Money values
//   - The heavy-package threshold is strictly positive
//   - The urgent surcharge percentage lies in [UrgentPercentMin..UrgentPercentMax]
//   - At most one tariff is active at a time; an administrator edit creates a
//     new active tariff and deactivates the predecessor
//
// Price breakdowns are snapshotted into orders at quote time: editing a tariff
// never recalculates already-issued breakdowns.
type Tariff struct {
	// id is the unique identifier for the tariff
	id kernel.UUID

	// baseRate is the flat charge applied to every delivery
	baseRate kernel.Money

	// perMileRate is the charge per mile of road distance
	perMileRate kernel.Money

	// perPoundRate is the linear charge per pound of package weight
	perPoundRate kernel.Money

	// heavyThresholdLb is the weight in pounds above which the flat heavy surcharge applies
	heavyThresholdLb float64

	// heavySurcharge is the flat add-on for packages above heavyThresholdLb
	heavySurcharge kernel.Money

	// urgentPercent is the percentage surcharge for urgent deliveries
	urgentPercent int

	// active reports whether this tariff is used for new quote calculations
	active bool

	// createdAt records when the administrator created this tariff version
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewTariff creates a new active Tariff with validated pricing parameters.
// This is the administrator-edit entry point: the caller is responsible for
// deactivating the previously active tariff in the same transaction.
//
// Returns a validation error if any rate is invalid, the heavy threshold is
// not positive, or the urgent percentage is out of range.
func NewTariff(
	id kernel.UUID,
	baseRate kernel.Money,
	perMileRate kernel.Money,
	perPoundRate kernel.Money,
	heavyThresholdLb float64,
	heavySurcharge kernel.Money,
	urgentPercent int,
	createdAt time.Time,
) (*Tariff, error) {
	t := &Tariff{
		active:    true,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setBaseRate(baseRate),
		t.setPerMileRate(perMileRate),
		t.setPerPoundRate(perPoundRate),
		t.setHeavyThresholdLb(heavyThresholdLb),
		t.setHeavySurcharge(heavySurcharge),
		t.setUrgentPercent(urgentPercent),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTariff reconstructs a Tariff aggregate from persistent storage,
// including its active flag. The restored tariff behaves identically to one
// created through NewTariff.
func RestoreTariff(
	id kernel.UUID,
	baseRate kernel.Money,
	perMileRate kernel.Money,
	perPoundRate kernel.Money,
	heavyThresholdLb float64,
	heavySurcharge kernel.Money,
	urgentPercent int,
	active bool,
	createdAt time.Time,
) (*Tariff, error) {
	t, err := NewTariff(id, baseRate, perMileRate, perPoundRate,
		heavyThresholdLb, heavySurcharge, urgentPercent, createdAt)
	if err != nil {
		return nil, err
	}

	t.active = active
	return t, nil
}

// Validate ensures the Tariff instance was properly constructed.
func (t *Tariff) Validate() error {
	if t == nil {
		return ErrTariffIsNotConstructed
	}
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// IsEqual compares two tariffs by their unique identifiers.
func (t *Tariff) IsEqual(other *Tariff) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tariff's unique identifier.
func (t *Tariff) ID() kernel.UUID {
	return t.id
}

// BaseRate returns the flat per-delivery charge.
func (t *Tariff) BaseRate() kernel.Money {
	return t.baseRate
}

// PerMileRate returns the charge per mile of distance.
func (t *Tariff) PerMileRate() kernel.Money {
	return t.perMileRate
}

// PerPoundRate returns the linear charge per pound of weight.
func (t *Tariff) PerPoundRate() kernel.Money {
	return t.perPoundRate
}

// HeavyThresholdLb returns the weight above which the heavy surcharge applies.
func (t *Tariff) HeavyThresholdLb() float64 {
	return t.heavyThresholdLb
}

// HeavySurcharge returns the flat heavy-package surcharge.
func (t *Tariff) HeavySurcharge() kernel.Money {
	return t.heavySurcharge
}

// UrgentPercent returns the urgent-delivery surcharge percentage.
func (t *Tariff) UrgentPercent() int {
	return t.urgentPercent
}

// IsActive reports whether this tariff is used for new quote calculations.
func (t *Tariff) IsActive() bool {
	return t.active
}

// CreatedAt returns when this tariff version was created.
func (t *Tariff) CreatedAt() time.Time {
	return t.createdAt
}

// Deactivate marks the tariff as superseded. Past orders keep their stored
// breakdowns; only future calculations are affected.
func (t *Tariff) Deactivate() {
	t.active = false
}

func (t *Tariff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tariff) setBaseRate(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	t.baseRate = rate
	return nil
}

func (t *Tariff) setPerMileRate(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	t.perMileRate = rate
	return nil
}

func (t *Tariff) setPerPoundRate(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	t.perPoundRate = rate
	return nil
}

func (t *Tariff) setHeavyThresholdLb(threshold float64) error {
	if threshold <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("heavy threshold",
			fmt.Errorf("%f is not greater than 0", threshold))
	}
	t.heavyThresholdLb = threshold
	return nil
}

func (t *Tariff) setHeavySurcharge(surcharge kernel.Money) error {
	if err := surcharge.Validate(); err != nil {
		return err
	}
	t.heavySurcharge = surcharge
	return nil
}

func (t *Tariff) setUrgentPercent(percent int) error {
	if percent < UrgentPercentMin || percent > UrgentPercentMax {
		return errs.NewValueIsOutOfRangeError("urgent percent", percent, UrgentPercentMin, UrgentPercentMax)
	}
	t.urgentPercent = percent
	return nil
}
