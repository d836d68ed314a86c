package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

func TestNewSubmitProofOfDeliveryCommand_RequiresEvidence(t *testing.T) {
	_, err := commands.NewSubmitProofOfDeliveryCommand(kernel.NewUUID(), "", "", "", "")
	require.Error(t, err)
}

func TestSubmitProofOfDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver := testAvailableDriver(t)
	driverID := testDriver.ID()
	testOrder := testOrderInStatus(t, order.InTransit, &driverID)
	require.NoError(t, testDriver.Assign(testOrder.ID()))

	cmd, err := commands.NewSubmitProofOfDeliveryCommand(
		testOrder.ID(), "https://cdn.example.com/pod/1.jpg", "", "Alex Chen", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateIfStatus", ctx, mock.AnythingOfType("*order.Order"), order.InTransit).
			Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.AnythingOfType("*notification.Notification")).Once()

	syncTrigger := new(MockSyncTrigger)
	syncTrigger.On("Sync", ctx, mock.AnythingOfType("ports.SyncEvent")).Once()

	handler := commands.NewSubmitProofOfDeliveryCommandHandler(factory, notifier, syncTrigger, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	require.NotNil(t, testOrder.Proof())
	assert.Equal(t, "Alex Chen", testOrder.Proof().RecipientName())

	// delivery releases the driver in the same transaction
	assert.Equal(t, driver.Available, testDriver.Status())
	assert.Nil(t, testDriver.ActiveOrder())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
}

func TestSubmitProofOfDeliveryCommandHandler_Handle_DuplicateSubmission(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	deliveredOrder := testOrderInStatus(t, order.Delivered, &driverID)

	cmd, err := commands.NewSubmitProofOfDeliveryCommand(
		deliveredOrder.ID(), "", "", "Someone Else", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, deliveredOrder.ID()).Return(deliveredOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitProofOfDeliveryCommandHandler(
		factory, new(MockNotifier), new(MockSyncTrigger), testLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)

	// the stored proof is untouched
	assert.Equal(t, "Alex Chen", deliveredOrder.Proof().RecipientName())
	uow.AssertNotCalled(t, "Commit", ctx)
}
