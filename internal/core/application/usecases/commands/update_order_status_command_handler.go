package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles driver progress reports.
// Advances the order one step along the lifecycle under a status
// precondition, then notifies the customer and syncs the CRM.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	notifier    ports.Notifier
	syncTrigger ports.SyncTrigger
	logger      *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for driver progress reports.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	syncTrigger ports.SyncTrigger,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		syncTrigger: syncTrigger,
		logger:      logger,
	}
}

// Handle processes the progress report.
// An out-of-order or duplicate report fails the state machine's transition
// check and leaves the order untouched.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	reportedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	prevStatus := reportedOrder.Status()

	switch cmd.Target() {
	case order.PickedUp:
		err = reportedOrder.MarkPickedUp(now)
	case order.InTransit:
		err = reportedOrder.MarkInTransit(now)
	default:
		// unreachable: the command constructor only admits driver statuses
		err = order.ErrInvalidTransition
	}
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, reportedOrder, prevStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitSideEffects(ctx, reportedOrder, now)
	return nil
}

func (h *UpdateOrderStatusCommandHandler) emitSideEffects(ctx context.Context, o *order.Order, at time.Time) {
	orderID := o.ID()

	titles := map[order.Status]string{
		order.PickedUp:  "Package picked up",
		order.InTransit: "Package in transit",
	}

	n, err := notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		&orderID,
		notification.TypeInfo,
		titles[o.Status()],
		fmt.Sprintf("%s is now %s.", o.OrderNumber(), o.Status()),
		at,
	)
	if err != nil {
		h.logger.Warn("failed to build notification",
			"order_id", orderID.String(), "error", err)
	} else {
		h.notifier.Notify(ctx, n)
	}

	h.syncTrigger.Sync(ctx, ports.SyncEvent{
		OrderID: orderID,
		Payload: ports.StatusChangedPayload{
			OrderNumber: o.OrderNumber(),
			Status:      o.Status().String(),
			ChangedAt:   at,
		},
	})
}
