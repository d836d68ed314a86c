package tariff

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrBreakdownIsNotConstructed is returned when a PriceBreakdown was not
// created through NewPriceBreakdown or RestorePriceBreakdown.
var ErrBreakdownIsNotConstructed = errors.New(
	"PriceBreakdown must be created via NewPriceBreakdown or RestorePriceBreakdown constructor")

// PriceBreakdown is the itemized set of charges attached to an order at quote
// time. It is immutable once issued: tariff edits never change an existing
// breakdown.
//
// Invariant: TotalPrice equals the sum of the four component charges, and all
// components are non-negative Money values.
type PriceBreakdown struct {
	baseRate        kernel.Money
	mileageCharge   kernel.Money
	weightSurcharge kernel.Money
	urgentSurcharge kernel.Money
	totalPrice      kernel.Money

	guard guard.ConstructorGuard
}

// NewPriceBreakdown creates a breakdown from its component charges, deriving
// the total. All components must be valid Money values.
func NewPriceBreakdown(baseRate, mileageCharge, weightSurcharge, urgentSurcharge kernel.Money) (PriceBreakdown, error) {
	if err := errors.Join(
		baseRate.Validate(),
		mileageCharge.Validate(),
		weightSurcharge.Validate(),
		urgentSurcharge.Validate(),
	); err != nil {
		return PriceBreakdown{}, err
	}

	total := baseRate.Add(mileageCharge).Add(weightSurcharge).Add(urgentSurcharge)

	return PriceBreakdown{
		baseRate:        baseRate,
		mileageCharge:   mileageCharge,
		weightSurcharge: weightSurcharge,
		urgentSurcharge: urgentSurcharge,
		totalPrice:      total,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestorePriceBreakdown reconstructs a breakdown from persistence, verifying
// the stored total against the sum of its components.
func RestorePriceBreakdown(
	baseRate, mileageCharge, weightSurcharge, urgentSurcharge, totalPrice kernel.Money,
) (PriceBreakdown, error) {
	breakdown, err := NewPriceBreakdown(baseRate, mileageCharge, weightSurcharge, urgentSurcharge)
	if err != nil {
		return PriceBreakdown{}, err
	}

	if !breakdown.totalPrice.IsEqual(totalPrice) {
		return PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause("total price",
			fmt.Errorf("stored total %s does not equal component sum %s",
				totalPrice, breakdown.totalPrice))
	}

	return breakdown, nil
}

// BaseRate returns the flat per-delivery charge.
func (b PriceBreakdown) BaseRate() kernel.Money {
	return b.baseRate
}

// MileageCharge returns the distance-based charge.
func (b PriceBreakdown) MileageCharge() kernel.Money {
	return b.mileageCharge
}

// WeightSurcharge returns the weight-based charge, including the flat
// heavy-package surcharge when it applies.
func (b PriceBreakdown) WeightSurcharge() kernel.Money {
	return b.weightSurcharge
}

// UrgentSurcharge returns the urgent-delivery surcharge, zero for standard deliveries.
func (b PriceBreakdown) UrgentSurcharge() kernel.Money {
	return b.urgentSurcharge
}

// TotalPrice returns the sum of all component charges.
func (b PriceBreakdown) TotalPrice() kernel.Money {
	return b.totalPrice
}

// Validate ensures the breakdown was created through a constructor.
func (b PriceBreakdown) Validate() error {
	return b.guard.Validate(ErrBreakdownIsNotConstructed)
}

// IsEqual compares two breakdowns by component values.
func (b PriceBreakdown) IsEqual(other PriceBreakdown) bool {
	return b.baseRate.IsEqual(other.baseRate) &&
		b.mileageCharge.IsEqual(other.mileageCharge) &&
		b.weightSurcharge.IsEqual(other.weightSurcharge) &&
		b.urgentSurcharge.IsEqual(other.urgentSurcharge) &&
		b.totalPrice.IsEqual(other.totalPrice)
}
