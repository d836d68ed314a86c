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

// ConfirmPaymentCommandHandler handles payment confirmation.
// Moves the order from awaiting-payment to pending under a status
// precondition, then emits the customer notification and the CRM
// order-created sync after commit.
type ConfirmPaymentCommandHandler struct {
	uowFactory  OrderUoWFactory
	notifier    ports.Notifier
	syncTrigger ports.SyncTrigger
	logger      *slog.Logger
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	syncTrigger ports.SyncTrigger,
	logger *slog.Logger,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		syncTrigger: syncTrigger,
		logger:      logger,
	}
}

// Handle processes the payment confirmation command.
//
// The update carries a status precondition: if a concurrent writer already
// moved the order out of awaiting-payment, no row is touched and the command
// fails with a version error instead of double-applying the confirmation.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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
	confirmedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	prevStatus := confirmedOrder.Status()
	if err = confirmedOrder.ConfirmPayment(); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, confirmedOrder, prevStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitSideEffects(ctx, confirmedOrder)
	return nil
}

// emitSideEffects fires the post-commit notification and CRM sync.
// Both are best effort; the confirmed order is already durable.
func (h *ConfirmPaymentCommandHandler) emitSideEffects(ctx context.Context, o *order.Order) {
	orderID := o.ID()

	n, err := notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		&orderID,
		notification.TypeInfo,
		"Order confirmed",
		fmt.Sprintf("Payment received for %s. We are finding you a driver.", o.OrderNumber()),
		time.Now().UTC(),
	)
	if err != nil {
		h.logger.Warn("failed to build notification",
			"order_id", orderID.String(), "error", err)
	} else {
		h.notifier.Notify(ctx, n)
	}

	h.syncTrigger.Sync(ctx, ports.SyncEvent{
		OrderID: orderID,
		Payload: ports.OrderCreatedPayload{
			OrderNumber:     o.OrderNumber(),
			CustomerID:      o.CustomerID().String(),
			CustomerContact: o.CustomerContact(),
			PickupAddress:   o.Shipment().PickupAddress(),
			DropoffAddress:  o.Shipment().DropoffAddress(),
			TotalPriceCents: o.Breakdown().TotalPrice().Cents(),
			CreatedAt:       o.CreatedAt(),
		},
	})
}
