package driver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

func makeDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(
		kernel.NewUUID(),
		"Sam Rivera",
		"+1-510-555-0199",
		"cargo-van",
		time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("valid driver starts available", func(t *testing.T) {
		d := makeDriver(t)

		assert.Equal(t, driver.Available, d.Status())
		assert.True(t, d.IsAvailable())
		assert.Nil(t, d.ActiveOrder())
		assert.Equal(t, "Sam Rivera", d.Name())
		assert.Equal(t, "cargo-van", d.VehicleType())
		assert.NoError(t, d.Validate())
	})

	tests := []struct {
		name        string
		driverName  string
		contact     string
		vehicleType string
	}{
		{name: "empty name", contact: "c", vehicleType: "v"},
		{name: "empty contact", driverName: "n", vehicleType: "v"},
		{name: "empty vehicle type", driverName: "n", contact: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := driver.NewDriver(kernel.NewUUID(), tt.driverName, tt.contact, tt.vehicleType, time.Now())
			require.Error(t, err)
		})
	}
}

func TestDriverAssignRelease(t *testing.T) {
	d := makeDriver(t)
	orderID := kernel.NewUUID()

	require.NoError(t, d.Assign(orderID))
	assert.Equal(t, driver.Busy, d.Status())
	require.NotNil(t, d.ActiveOrder())
	assert.True(t, orderID.IsEqual(*d.ActiveOrder()))

	// a busy driver cannot take a second order
	err := d.Assign(kernel.NewUUID())
	require.ErrorIs(t, err, driver.ErrDriverIsNotAvailable)
	assert.True(t, orderID.IsEqual(*d.ActiveOrder()))

	require.NoError(t, d.Release())
	assert.Equal(t, driver.Available, d.Status())
	assert.Nil(t, d.ActiveOrder())

	require.ErrorIs(t, d.Release(), driver.ErrDriverIsNotBusy)
}

func TestDriverOfflineCycle(t *testing.T) {
	d := makeDriver(t)

	require.NoError(t, d.GoOffline())
	assert.Equal(t, driver.Offline, d.Status())
	assert.False(t, d.IsAvailable())

	// offline drivers cannot be assigned
	require.ErrorIs(t, d.Assign(kernel.NewUUID()), driver.ErrDriverIsNotAvailable)

	d.GoOnline()
	assert.Equal(t, driver.Available, d.Status())
}

func TestDriverBusyCannotGoOffline(t *testing.T) {
	d := makeDriver(t)
	require.NoError(t, d.Assign(kernel.NewUUID()))

	require.ErrorIs(t, d.GoOffline(), driver.ErrDriverHasActiveOrder)
	assert.Equal(t, driver.Busy, d.Status())
}

func TestRestoreDriver(t *testing.T) {
	t.Run("busy driver with active order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		d, err := driver.RestoreDriver(
			kernel.NewUUID(), "Sam Rivera", "+1-510-555-0199", "bike",
			driver.Busy, &orderID, time.Now(),
		)
		require.NoError(t, err)
		assert.Equal(t, driver.Busy, d.Status())
		assert.True(t, orderID.IsEqual(*d.ActiveOrder()))
	})

	t.Run("busy without active order is inconsistent", func(t *testing.T) {
		_, err := driver.RestoreDriver(
			kernel.NewUUID(), "Sam Rivera", "c", "bike",
			driver.Busy, nil, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("available with active order is inconsistent", func(t *testing.T) {
		orderID := kernel.NewUUID()
		_, err := driver.RestoreDriver(
			kernel.NewUUID(), "Sam Rivera", "c", "bike",
			driver.Available, &orderID, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := driver.RestoreDriver(
			kernel.NewUUID(), "Sam Rivera", "c", "bike",
			driver.StatusUnknown, nil, time.Now(),
		)
		require.Error(t, err)
	})
}

func TestDriverStatusFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    driver.Status
		wantErr bool
	}{
		{input: "available", want: driver.Available},
		{input: "busy", want: driver.Busy},
		{input: "offline", want: driver.Offline},
		{input: "unknown", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := driver.StatusFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestDriverValidateUnconstructed(t *testing.T) {
	var d driver.Driver
	assert.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
}
