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

// SubmitProofOfDeliveryCommandHandler handles delivery completion.
// Attaches the proof, moves the order to delivered, and releases the driver
// back to available in one transaction. The customer gets a success
// notification and the CRM gets the status change after commit.
type SubmitProofOfDeliveryCommandHandler struct {
	uowFactory  UoWFactory
	notifier    ports.Notifier
	syncTrigger ports.SyncTrigger
	logger      *slog.Logger
}

// NewSubmitProofOfDeliveryCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory spanning order and driver aggregates.
func NewSubmitProofOfDeliveryCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	syncTrigger ports.SyncTrigger,
	logger *slog.Logger,
) SubmitProofOfDeliveryCommandHandler {
	return SubmitProofOfDeliveryCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		syncTrigger: syncTrigger,
		logger:      logger,
	}
}

// Handle processes the delivery command.
// A duplicate submission finds the order already delivered and fails the
// transition check without touching the stored proof.
func (h *SubmitProofOfDeliveryCommandHandler) Handle(ctx context.Context, cmd SubmitProofOfDeliveryCommand) error {
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
	deliveredOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	prevStatus := deliveredOrder.Status()

	if err = deliveredOrder.Deliver(cmd.Proof(), now); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, deliveredOrder, prevStatus); err != nil {
		return err
	}

	if driverID := deliveredOrder.Driver(); driverID != nil {
		driverRepo := uow.DriverRepository()

		releasedDriver, err := driverRepo.Get(ctx, *driverID)
		if err != nil {
			return err
		}

		if err = releasedDriver.Release(); err != nil {
			return err
		}

		if err = driverRepo.Update(ctx, releasedDriver); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitSideEffects(ctx, deliveredOrder, now)
	return nil
}

func (h *SubmitProofOfDeliveryCommandHandler) emitSideEffects(ctx context.Context, o *order.Order, at time.Time) {
	orderID := o.ID()

	n, err := notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		&orderID,
		notification.TypeSuccess,
		"Order delivered",
		fmt.Sprintf("%s was delivered. Thanks for shipping with us.", o.OrderNumber()),
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
