package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	releasedDriver := testAvailableDriver(t)
	driverID := releasedDriver.ID()
	testOrder := testOrderInStatus(t, order.Delivered, &driverID)

	cmd, err := commands.NewCompleteOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateIfStatus", ctx, mock.AnythingOfType("*order.Order"), order.Delivered).
			Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(releasedDriver, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.AnythingOfType("*notification.Notification")).Once()

	syncTrigger := new(MockSyncTrigger)
	syncTrigger.On("Sync", ctx, mock.AnythingOfType("ports.SyncEvent")).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, notifier, syncTrigger, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	assert.NotNil(t, testOrder.CompletedAt())

	// the driver was released at delivery; approval leaves them untouched
	assert.Equal(t, driver.Available, releasedDriver.Status())
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	syncEvent := syncTrigger.Calls[0].Arguments[1].(ports.SyncEvent)
	payload, ok := syncEvent.Payload.(ports.OrderCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, int64(8000), payload.TotalPriceCents)
}

func TestCompleteOrderCommandHandler_Handle_ReleasesLingeringDriver(t *testing.T) {
	ctx := t.Context()

	boundDriver := testAvailableDriver(t)
	driverID := boundDriver.ID()
	testOrder := testOrderInStatus(t, order.Delivered, &driverID)
	require.NoError(t, boundDriver.Assign(testOrder.ID()))

	cmd, err := commands.NewCompleteOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateIfStatus", ctx, mock.AnythingOfType("*order.Order"), order.Delivered).
			Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(boundDriver, nil).Once(),
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

	handler := commands.NewCompleteOrderCommandHandler(factory, notifier, syncTrigger, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())

	// the stale binding is cleared in the same transaction
	assert.Equal(t, driver.Available, boundDriver.Status())
	assert.Nil(t, boundDriver.ActiveOrder())
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_RacingApprovals(t *testing.T) {
	ctx := t.Context()

	releasedDriver := testAvailableDriver(t)
	driverID := releasedDriver.ID()
	testOrder := testOrderInStatus(t, order.Delivered, &driverID)

	cmd, err := commands.NewCompleteOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateIfStatus", ctx, mock.AnythingOfType("*order.Order"), order.Delivered).
			Return(errs.NewVersionIsInvalidError("order status")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	syncTrigger := new(MockSyncTrigger)
	handler := commands.NewCompleteOrderCommandHandler(factory, new(MockNotifier), syncTrigger, testLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	syncTrigger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}
