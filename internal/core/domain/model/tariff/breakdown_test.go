package tariff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tariff"
	"dispatch/internal/pkg/errs"
)

func TestNewPriceBreakdown(t *testing.T) {
	b, err := tariff.NewPriceBreakdown(
		mustMoney(t, 2500),
		mustMoney(t, 3125),
		mustMoney(t, 4500),
		mustMoney(t, 2531),
	)

	require.NoError(t, err)
	assert.NoError(t, b.Validate())
	assert.Equal(t, int64(2500), b.BaseRate().Cents())
	assert.Equal(t, int64(3125), b.MileageCharge().Cents())
	assert.Equal(t, int64(4500), b.WeightSurcharge().Cents())
	assert.Equal(t, int64(2531), b.UrgentSurcharge().Cents())
	assert.Equal(t, int64(12656), b.TotalPrice().Cents())
}

func TestNewPriceBreakdownZeroSurcharges(t *testing.T) {
	b, err := tariff.NewPriceBreakdown(
		mustMoney(t, 2500),
		mustMoney(t, 1000),
		kernel.ZeroMoney(),
		kernel.ZeroMoney(),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(3500), b.TotalPrice().Cents())
}

func TestRestorePriceBreakdown(t *testing.T) {
	t.Run("matching total", func(t *testing.T) {
		b, err := tariff.RestorePriceBreakdown(
			mustMoney(t, 2500),
			mustMoney(t, 3125),
			mustMoney(t, 4500),
			mustMoney(t, 2531),
			mustMoney(t, 12656),
		)
		require.NoError(t, err)
		assert.Equal(t, int64(12656), b.TotalPrice().Cents())
	})

	t.Run("stored total does not match components", func(t *testing.T) {
		_, err := tariff.RestorePriceBreakdown(
			mustMoney(t, 2500),
			mustMoney(t, 3125),
			mustMoney(t, 4500),
			mustMoney(t, 2531),
			mustMoney(t, 9999),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPriceBreakdownIsEqual(t *testing.T) {
	first, err := tariff.NewPriceBreakdown(
		mustMoney(t, 2500), mustMoney(t, 3125), mustMoney(t, 4500), mustMoney(t, 2531))
	require.NoError(t, err)

	same, err := tariff.NewPriceBreakdown(
		mustMoney(t, 2500), mustMoney(t, 3125), mustMoney(t, 4500), mustMoney(t, 2531))
	require.NoError(t, err)

	different, err := tariff.NewPriceBreakdown(
		mustMoney(t, 2500), mustMoney(t, 3125), mustMoney(t, 4500), kernel.ZeroMoney())
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(different))
}

func TestPriceBreakdownValidateUnconstructed(t *testing.T) {
	var b tariff.PriceBreakdown
	assert.ErrorIs(t, b.Validate(), tariff.ErrBreakdownIsNotConstructed)
}
