package notification_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
)

func TestNewNotification(t *testing.T) {
	recipientID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("valid notification starts unread", func(t *testing.T) {
		n, err := notification.NewNotification(
			kernel.NewUUID(), recipientID, &orderID,
			notification.TypeInfo,
			"Driver assigned",
			"Sam Rivera is heading to pickup for ORD-5A2F91C0",
			time.Now(),
		)
		require.NoError(t, err)

		assert.False(t, n.IsRead())
		assert.Equal(t, notification.TypeInfo, n.Type())
		assert.True(t, orderID.IsEqual(*n.OrderID()))
		assert.NoError(t, n.Validate())
	})

	t.Run("order binding is optional", func(t *testing.T) {
		n, err := notification.NewNotification(
			kernel.NewUUID(), recipientID, nil,
			notification.TypeWarning, "Sync failed", "CRM sync for ORD-1 failed", time.Now(),
		)
		require.NoError(t, err)
		assert.Nil(t, n.OrderID())
	})

	tests := []struct {
		name    string
		typ     notification.Type
		title   string
		message string
	}{
		{name: "unknown type", typ: notification.TypeUnknown, title: "t", message: "m"},
		{name: "empty title", typ: notification.TypeInfo, message: "m"},
		{name: "empty message", typ: notification.TypeInfo, title: "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := notification.NewNotification(
				kernel.NewUUID(), recipientID, nil, tt.typ, tt.title, tt.message, time.Now(),
			)
			require.Error(t, err)
		})
	}
}

func TestNotificationMarkRead(t *testing.T) {
	recipientID := kernel.NewUUID()
	n, err := notification.NewNotification(
		kernel.NewUUID(), recipientID, nil,
		notification.TypeSuccess, "Order delivered", "ORD-1 was delivered", time.Now(),
	)
	require.NoError(t, err)

	t.Run("wrong recipient cannot mark read", func(t *testing.T) {
		err := n.MarkRead(kernel.NewUUID())
		require.Error(t, err)
		assert.False(t, n.IsRead())
	})

	t.Run("recipient marks read", func(t *testing.T) {
		require.NoError(t, n.MarkRead(recipientID))
		assert.True(t, n.IsRead())

		// idempotent
		require.NoError(t, n.MarkRead(recipientID))
		assert.True(t, n.IsRead())
	})
}

func TestTypeFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    notification.Type
		wantErr bool
	}{
		{input: "info", want: notification.TypeInfo},
		{input: "success", want: notification.TypeSuccess},
		{input: "warning", want: notification.TypeWarning},
		{input: "unknown", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := notification.TypeFromString(tt.input)
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

func TestRestoreNotification(t *testing.T) {
	recipientID := kernel.NewUUID()
	n, err := notification.RestoreNotification(
		kernel.NewUUID(), recipientID, nil,
		notification.TypeInfo, "t", "m", true, time.Now(),
	)
	require.NoError(t, err)
	assert.True(t, n.IsRead())
}
