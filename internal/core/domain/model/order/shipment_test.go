package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

func TestNewShipment(t *testing.T) {
	pickup, err := kernel.NewLocation(37.7749, -122.4194)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(37.8044, -122.2712)
	require.NoError(t, err)

	t.Run("valid shipment with coordinates", func(t *testing.T) {
		s, err := order.NewShipment(
			"1 Market St, San Francisco",
			"300 Broadway, Oakland",
			&pickup, &dropoff,
			12.5, 40, true,
			"two boxes of server parts",
			"ring the loading dock bell",
		)
		require.NoError(t, err)

		assert.Equal(t, "1 Market St, San Francisco", s.PickupAddress())
		assert.Equal(t, "300 Broadway, Oakland", s.DropoffAddress())
		assert.True(t, pickup.IsEqual(*s.PickupLocation()))
		assert.True(t, dropoff.IsEqual(*s.DropoffLocation()))
		assert.InDelta(t, 12.5, s.DistanceMiles(), 1e-9)
		assert.InDelta(t, 40.0, s.WeightLb(), 1e-9)
		assert.True(t, s.IsUrgent())
		assert.Equal(t, "two boxes of server parts", s.Description())
		assert.Equal(t, "ring the loading dock bell", s.SpecialInstructions())
		assert.NoError(t, s.Validate())
	})

	t.Run("valid shipment without coordinates", func(t *testing.T) {
		s, err := order.NewShipment(
			"1 Market St", "300 Broadway", nil, nil,
			5, 10, false, "documents", "",
		)
		require.NoError(t, err)
		assert.Nil(t, s.PickupLocation())
		assert.Nil(t, s.DropoffLocation())
		assert.False(t, s.IsUrgent())
	})

	tests := []struct {
		name           string
		pickupAddress  string
		dropoffAddress string
		distance       float64
		weight         float64
		description    string
	}{
		{name: "empty pickup address", dropoffAddress: "b", distance: 1, weight: 1, description: "x"},
		{name: "empty dropoff address", pickupAddress: "a", distance: 1, weight: 1, description: "x"},
		{name: "zero distance", pickupAddress: "a", dropoffAddress: "b", weight: 1, description: "x"},
		{name: "negative distance", pickupAddress: "a", dropoffAddress: "b", distance: -3, weight: 1, description: "x"},
		{name: "zero weight", pickupAddress: "a", dropoffAddress: "b", distance: 1, description: "x"},
		{name: "negative weight", pickupAddress: "a", dropoffAddress: "b", distance: 1, weight: -0.5, description: "x"},
		{name: "empty description", pickupAddress: "a", dropoffAddress: "b", distance: 1, weight: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewShipment(
				tt.pickupAddress, tt.dropoffAddress, nil, nil,
				tt.distance, tt.weight, false, tt.description, "",
			)
			require.Error(t, err)
		})
	}
}

func TestShipmentValidateUnconstructed(t *testing.T) {
	var s order.Shipment
	assert.ErrorIs(t, s.Validate(), order.ErrShipmentIsNotConstructed)
}
