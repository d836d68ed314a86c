package commands

import (
	"context"
	"time"
)

// RemoveAbandonedOrdersCommandHandler handles abandoned-checkout cleanup.
// Deletion only touches awaiting-payment rows, so an order whose payment
// confirms concurrently is never removed.
type RemoveAbandonedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveAbandonedOrdersCommandHandler creates a handler for abandoned-order cleanup.
func NewRemoveAbandonedOrdersCommandHandler(uowFactory OrderUoWFactory) RemoveAbandonedOrdersCommandHandler {
	return RemoveAbandonedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup command and returns the number of removed orders.
func (h *RemoveAbandonedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveAbandonedOrdersCommand,
) (int64, error) {
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

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	removed, err := uow.OrderRepository().DeleteAllAwaitingPaymentBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
