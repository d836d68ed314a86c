package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/order"
)

func TestNewProofOfDelivery(t *testing.T) {
	t.Run("full evidence", func(t *testing.T) {
		p, err := order.NewProofOfDelivery(
			"https://cdn.example.com/pod/1.jpg",
			"https://cdn.example.com/sig/1.png",
			"Alex Chen",
			"left at the front desk",
		)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/pod/1.jpg", p.PhotoURL())
		assert.Equal(t, "https://cdn.example.com/sig/1.png", p.SignatureURL())
		assert.Equal(t, "Alex Chen", p.RecipientName())
		assert.Equal(t, "left at the front desk", p.Notes())
		assert.NoError(t, p.Validate())
	})

	t.Run("single field is enough", func(t *testing.T) {
		p, err := order.NewProofOfDelivery("", "", "Alex Chen", "")
		require.NoError(t, err)
		assert.NoError(t, p.Validate())
	})

	t.Run("all fields empty", func(t *testing.T) {
		_, err := order.NewProofOfDelivery("", "", "", "")
		require.Error(t, err)
	})
}

func TestProofOfDeliveryValidateUnconstructed(t *testing.T) {
	var p order.ProofOfDelivery
	assert.ErrorIs(t, p.Validate(), order.ErrProofIsNotConstructed)
}
