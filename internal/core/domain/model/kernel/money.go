package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money values must be created via NewMoneyFromCents or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyFromCents or ZeroMoney constructors")

// Money is an immutable non-negative monetary amount stored as integer cents.
// All pricing arithmetic operates on Money to avoid floating-point drift;
// fractional intermediate results are rounded to the nearest cent.
//
// Example:
//
//	base, _ := kernel.NewMoneyFromCents(2500)
//	mileage, _ := base.MulFloat(2.0)       // $50.00
//	total := base.Add(mileage)             // $75.00
//	fmt.Println(total)                     // Output: $75.00
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoneyFromCents creates a Money value from integer cents.
// Negative amounts are rejected with a validation error.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		cents: m.cents + other.cents,
		guard: guard.NewConstructorGuard(),
	}
}

// MulFloat multiplies the amount by a non-negative factor, rounding to the
// nearest cent. Used for per-mile and per-pound charges and percentage surcharges.
func (m Money) MulFloat(factor float64) (Money, error) {
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%f is not a valid multiplier", factor))
	}

	return Money{
		cents: int64(math.Round(float64(m.cents) * factor)),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Validate ensures the Money value was created through a constructor.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// String formats the amount as dollars, e.g. "$95.00".
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/100, m.cents%100)
}
