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

// ApproveDeliveredOrdersCommandHandler handles the auto-approval sweep.
// Each eligible order is completed under a status precondition; an order a
// dispatcher approves concurrently is skipped, not double-completed.
type ApproveDeliveredOrdersCommandHandler struct {
	uowFactory  OrderUoWFactory
	notifier    ports.Notifier
	syncTrigger ports.SyncTrigger
	logger      *slog.Logger
}

// NewApproveDeliveredOrdersCommandHandler creates a handler for the auto-approval sweep.
func NewApproveDeliveredOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	syncTrigger ports.SyncTrigger,
	logger *slog.Logger,
) ApproveDeliveredOrdersCommandHandler {
	return ApproveDeliveredOrdersCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		syncTrigger: syncTrigger,
		logger:      logger,
	}
}

// Handle processes the sweep and returns the number of orders approved.
func (h *ApproveDeliveredOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveDeliveredOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	delivered, err := orderRepo.GetAllInStatus(ctx, order.Delivered)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-cmd.GracePeriod())

	var approved []*order.Order
	for _, o := range delivered {
		deliveredAt := o.DeliveredAt()
		if deliveredAt == nil || deliveredAt.After(cutoff) {
			continue
		}

		prevStatus := o.Status()
		if err = o.Complete(now); err != nil {
			return 0, err
		}

		if err = orderRepo.UpdateIfStatus(ctx, o, prevStatus); err != nil {
			return 0, err
		}

		approved = append(approved, o)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, o := range approved {
		h.emitSideEffects(ctx, o, now)
	}

	return len(approved), nil
}

func (h *ApproveDeliveredOrdersCommandHandler) emitSideEffects(ctx context.Context, o *order.Order, at time.Time) {
	orderID := o.ID()

	n, err := notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		&orderID,
		notification.TypeSuccess,
		"Invoice approved",
		fmt.Sprintf("The invoice for %s was auto-approved. The order is closed.", o.OrderNumber()),
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
