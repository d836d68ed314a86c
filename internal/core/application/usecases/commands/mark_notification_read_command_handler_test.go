package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
)

func TestMarkNotificationReadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	recipientID := kernel.NewUUID()
	n, err := notification.NewNotification(
		kernel.NewUUID(), recipientID, nil,
		notification.TypeInfo, "Driver assigned", "on the way", time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewMarkNotificationReadCommand(n.ID(), recipientID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Get", ctx, n.ID()).Return(n, nil).Once(),
		notificationRepo.On("Update", ctx, n).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, n.IsRead())
}

func TestMarkNotificationReadCommandHandler_Handle_WrongRecipient(t *testing.T) {
	ctx := t.Context()

	n, err := notification.NewNotification(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		notification.TypeInfo, "Driver assigned", "on the way", time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewMarkNotificationReadCommand(n.ID(), kernel.NewUUID())
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Get", ctx, n.ID()).Return(n, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.False(t, n.IsRead())
	uow.AssertNotCalled(t, "Commit", ctx)
}
