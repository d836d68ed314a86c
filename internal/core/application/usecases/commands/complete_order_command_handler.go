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

// CompleteOrderCommandHandler handles invoice approval.
// Moves a delivered order to completed and releases the driver if one is
// still bound, then notifies the customer and pushes the order-completed
// event to the CRM.
type CompleteOrderCommandHandler struct {
	uowFactory  UoWFactory
	notifier    ports.Notifier
	syncTrigger ports.SyncTrigger
	logger      *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for invoice approval.
// Requires a UoWFactory spanning order and driver aggregates.
func NewCompleteOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	syncTrigger ports.SyncTrigger,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		syncTrigger: syncTrigger,
		logger:      logger,
	}
}

// Handle processes the invoice approval command.
// Racing approvals (manual vs the auto-approve job) are serialized by the
// status precondition: the second approval touches no rows and fails with a
// version error.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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
	completedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	prevStatus := completedOrder.Status()

	if err = completedOrder.Complete(now); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, completedOrder, prevStatus); err != nil {
		return err
	}

	// Delivery normally released the driver already; if the binding is still
	// there, clear it in the same transaction.
	if driverID := completedOrder.Driver(); driverID != nil {
		driverRepo := uow.DriverRepository()

		boundDriver, err := driverRepo.Get(ctx, *driverID)
		if err != nil {
			return err
		}

		if active := boundDriver.ActiveOrder(); active != nil && active.IsEqual(completedOrder.ID()) {
			if err = boundDriver.Release(); err != nil {
				return err
			}

			if err = driverRepo.Update(ctx, boundDriver); err != nil {
				return err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitSideEffects(ctx, completedOrder, now)
	return nil
}

func (h *CompleteOrderCommandHandler) emitSideEffects(ctx context.Context, o *order.Order, at time.Time) {
	orderID := o.ID()

	n, err := notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		&orderID,
		notification.TypeSuccess,
		"Invoice approved",
		fmt.Sprintf("The invoice for %s was approved. The order is closed.", o.OrderNumber()),
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
		Payload: ports.OrderCompletedPayload{
			OrderNumber:     o.OrderNumber(),
			TotalPriceCents: o.Breakdown().TotalPrice().Cents(),
			CompletedAt:     at,
		},
	})
}
