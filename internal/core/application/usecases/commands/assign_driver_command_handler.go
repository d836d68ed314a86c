package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// AssignDriverCommandHandler handles driver assignment.
// Moves the order from pending to assigned and flips the driver to busy in a
// single transaction, then notifies the customer and the driver and syncs
// the CRM.
type AssignDriverCommandHandler struct {
	uowFactory  UoWFactory
	notifier    ports.Notifier
	syncTrigger ports.SyncTrigger
	logger      *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
// Requires a UoWFactory spanning order and driver aggregates.
func NewAssignDriverCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	syncTrigger ports.SyncTrigger,
	logger *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		syncTrigger: syncTrigger,
		logger:      logger,
	}
}

// Handle processes the assignment command.
//
// Two dispatchers racing to assign the same order are serialized by the
// status precondition on the order update: the loser touches no rows and
// gets a version error, leaving the winner's assignment intact.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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
	driverRepo := uow.DriverRepository()

	assignedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignedDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	prevStatus := assignedOrder.Status()

	if err = assignedOrder.Assign(cmd.DriverID(), now); err != nil {
		return err
	}

	if err = assignedDriver.Assign(cmd.OrderID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, assignedOrder, prevStatus); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitSideEffects(ctx, assignedOrder, assignedDriver, now)
	return nil
}

// emitSideEffects notifies both parties of the assignment: the customer
// learns who is coming, the driver learns where to go.
func (h *AssignDriverCommandHandler) emitSideEffects(
	ctx context.Context,
	o *order.Order,
	d *driver.Driver,
	at time.Time,
) {
	orderID := o.ID()

	customerNote, err := notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		&orderID,
		notification.TypeInfo,
		"Driver assigned",
		fmt.Sprintf("%s is heading to pickup for %s.", d.Name(), o.OrderNumber()),
		at,
	)
	if err != nil {
		h.logger.Warn("failed to build notification",
			"order_id", orderID.String(), "error", err)
	} else {
		h.notifier.Notify(ctx, customerNote)
	}

	driverNote, err := notification.NewNotification(
		kernel.NewUUID(),
		d.ID(),
		&orderID,
		notification.TypeInfo,
		"New assignment",
		fmt.Sprintf("You are assigned to %s. Pickup at %s.",
			o.OrderNumber(), o.Shipment().PickupAddress()),
		at,
	)
	if err != nil {
		h.logger.Warn("failed to build notification",
			"order_id", orderID.String(), "error", err)
	} else {
		h.notifier.Notify(ctx, driverNote)
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
