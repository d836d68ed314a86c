package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("should create money from non-negative cents", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(2500)

		require.NoError(t, err)
		assert.Equal(t, int64(2500), m.Cents())
		require.NoError(t, m.Validate())
	})

	t.Run("should allow zero cents", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})

	t.Run("should reject negative cents", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestZeroMoney(t *testing.T) {
	t.Run("should create valid zero amount", func(t *testing.T) {
		m := kernel.ZeroMoney()

		require.NoError(t, m.Validate())
		assert.Equal(t, int64(0), m.Cents())
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value money fails validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(2500)
		b, _ := kernel.NewMoneyFromCents(3000)

		sum := a.Add(b)

		assert.Equal(t, int64(5500), sum.Cents())
		require.NoError(t, sum.Validate())
	})
}

func TestMoney_MulFloat(t *testing.T) {
	t.Run("should multiply and round to nearest cent", func(t *testing.T) {
		testCases := []struct {
			name     string
			cents    int64
			factor   float64
			expected int64
		}{
			{"per mile rate times distance", 250, 10, 2500},
			{"per pound rate times weight", 50, 60, 3000},
			{"percentage surcharge", 6000, 0.25, 1500},
			{"rounds half up", 333, 0.5, 167},
			{"zero factor", 2500, 0, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				m, _ := kernel.NewMoneyFromCents(tc.cents)

				result, err := m.MulFloat(tc.factor)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, result.Cents())
			})
		}
	})

	t.Run("should reject negative factor", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromCents(100)

		_, err := m.MulFloat(-1.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("equal amounts compare equal", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(9500)
		b, _ := kernel.NewMoneyFromCents(9500)
		c, _ := kernel.NewMoneyFromCents(7500)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("formats as dollars", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromCents(9505)

		assert.Equal(t, "$95.05", m.String())
	})
}
