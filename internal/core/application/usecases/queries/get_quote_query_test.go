package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetQuoteQuery_Valid(t *testing.T) {
	query, err := queries.NewGetQuoteQuery(12.5, 40, true)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.InDelta(t, 12.5, query.DistanceMiles(), 0.0001)
	assert.InDelta(t, 40.0, query.WeightLb(), 0.0001)
	assert.True(t, query.IsUrgent())
}

func TestNewGetQuoteQuery_InvalidInputs(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		weight   float64
	}{
		{"zero distance", 0, 40},
		{"negative distance", -1, 40},
		{"zero weight", 12.5, 0},
		{"negative weight", 12.5, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetQuoteQuery(tt.distance, tt.weight, false)
			require.Error(t, err)
		})
	}
}

func TestGetQuoteQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetQuoteQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQuoteQueryIsNotConstructed)
}
