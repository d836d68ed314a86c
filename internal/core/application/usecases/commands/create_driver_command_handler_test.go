package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateDriverCommand(
		kernel.NewUUID(), "Sam Rivera", "+1-510-555-0199", "cargo-van")
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedDriver := driverRepo.Calls[0].Arguments[1].(*driver.Driver)
	assert.Equal(t, driver.Available, addedDriver.Status())
	assert.Equal(t, "Sam Rivera", addedDriver.Name())
}

func TestNewCreateDriverCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "", "contact", "van")
	require.Error(t, err)

	_, err = commands.NewCreateDriverCommand(kernel.UUID{}, "name", "contact", "van")
	require.Error(t, err)
}
