package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
)

func validCreateOrderParams() commands.CreateOrderParams {
	return commands.CreateOrderParams{
		OrderID:         kernel.NewUUID(),
		CustomerID:      kernel.NewUUID(),
		CustomerContact: "+1-415-555-0100",
		PickupAddress:   "1 Market St",
		DropoffAddress:  "300 Broadway",
		DistanceMiles:   12.5,
		WeightLb:        40,
		Urgent:          true,
		Description:     "two boxes of server parts",
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams())
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.IsUrgent())
		assert.InDelta(t, 12.5, cmd.DistanceMiles(), 1e-9)
	})

	tests := []struct {
		name   string
		mutate func(*commands.CreateOrderParams)
	}{
		{name: "empty order id", mutate: func(p *commands.CreateOrderParams) { p.OrderID = kernel.UUID{} }},
		{name: "empty customer id", mutate: func(p *commands.CreateOrderParams) { p.CustomerID = kernel.UUID{} }},
		{name: "empty contact", mutate: func(p *commands.CreateOrderParams) { p.CustomerContact = "" }},
		{name: "empty pickup address", mutate: func(p *commands.CreateOrderParams) { p.PickupAddress = "" }},
		{name: "empty dropoff address", mutate: func(p *commands.CreateOrderParams) { p.DropoffAddress = "" }},
		{name: "zero distance", mutate: func(p *commands.CreateOrderParams) { p.DistanceMiles = 0 }},
		{name: "negative weight", mutate: func(p *commands.CreateOrderParams) { p.WeightLb = -1 }},
		{name: "empty description", mutate: func(p *commands.CreateOrderParams) { p.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validCreateOrderParams()
			tt.mutate(&params)

			_, err := commands.NewCreateOrderCommand(params)
			require.Error(t, err)
		})
	}
}

func TestCreateOrderCommandValidateUnconstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
