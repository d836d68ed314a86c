package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tariff"
	"dispatch/internal/pkg/errs"
)

// QuoteCalculator is a domain service responsible for pricing a shipment
// against a tariff. It is the single pricing authority in the system: the
// quote endpoint and order checkout both route through it, so a quote and
// the order created from it can never disagree.
//
// Pricing formula:
//   - base rate: flat per-order charge from the tariff
//   - mileage charge: per-mile rate x distance
//   - weight surcharge: per-pound rate x weight, plus a flat heavy surcharge
//     when the weight exceeds the tariff's heavy threshold
//   - urgent surcharge: the subtotal of the above x the tariff's urgent
//     percentage, applied only when the customer requests urgent delivery
//
// All arithmetic happens in integer cents with half-up rounding at each
// component, so a stored breakdown always equals the sum of its parts.
//
// Example usage:
//
//	calculator := NewQuoteCalculator()
//	breakdown, err := calculator.Calculate(12.5, 40, true, activeTariff)
//	if err != nil {
//	    // invalid inputs or tariff
//	    return
//	}
//	fmt.Println(breakdown.TotalPrice())
type QuoteCalculator struct{}

// NewQuoteCalculator creates a new QuoteCalculator instance.
func NewQuoteCalculator() QuoteCalculator {
	return QuoteCalculator{}
}

// Calculate prices a shipment against the given tariff and returns the full
// price breakdown.
//
// Parameters:
//   - distanceMiles: Road distance between pickup and dropoff (must be > 0)
//   - weightLb: Package weight in pounds (must be > 0)
//   - urgent: Whether the customer requested urgent delivery
//   - t: The tariff to price against (must be constructed)
//
// Returns:
//   - tariff.PriceBreakdown: The itemized price
//   - error: Validation errors for non-positive inputs or an invalid tariff
func (q QuoteCalculator) Calculate(
	distanceMiles float64,
	weightLb float64,
	urgent bool,
	t *tariff.Tariff,
) (tariff.PriceBreakdown, error) {
	if err := t.Validate(); err != nil {
		return tariff.PriceBreakdown{}, err
	}

	if distanceMiles <= 0 {
		return tariff.PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%f is not greater than 0", distanceMiles))
	}

	if weightLb <= 0 {
		return tariff.PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%f is not greater than 0", weightLb))
	}

	mileageCharge, err := t.PerMileRate().MulFloat(distanceMiles)
	if err != nil {
		return tariff.PriceBreakdown{}, err
	}

	weightSurcharge, err := t.PerPoundRate().MulFloat(weightLb)
	if err != nil {
		return tariff.PriceBreakdown{}, err
	}

	if weightLb > t.HeavyThresholdLb() {
		weightSurcharge = weightSurcharge.Add(t.HeavySurcharge())
	}

	urgentSurcharge := kernel.ZeroMoney()
	if urgent {
		subtotal := t.BaseRate().Add(mileageCharge).Add(weightSurcharge)
		urgentSurcharge, err = subtotal.MulFloat(float64(t.UrgentPercent()) / 100)
		if err != nil {
			return tariff.PriceBreakdown{}, err
		}
	}

	return tariff.NewPriceBreakdown(t.BaseRate(), mileageCharge, weightSurcharge, urgentSurcharge)
}
