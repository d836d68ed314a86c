package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for checkout.
// Prices the shipment against the active tariff, snapshots the breakdown
// into a new order in awaiting-payment status, and persists it.
//
// The price the customer saw at quote time is reproduced here from the same
// tariff and formula, so the stored breakdown matches the accepted quote.
type CreateOrderCommandHandler struct {
	uowFactory OrderTariffUoWFactory
	calculator services.QuoteCalculator
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires an OrderTariffUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderTariffUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewQuoteCalculator(),
	}
}

// Handle processes the checkout command.
// Reads the active tariff, prices the shipment, and creates the order in
// awaiting-payment status. No notification or CRM sync happens here; those
// fire on payment confirmation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	activeTariff, err := uow.TariffRepository().GetActive(ctx)
	if err != nil {
		return err
	}

	breakdown, err := h.calculator.Calculate(
		cmd.DistanceMiles(), cmd.WeightLb(), cmd.IsUrgent(), activeTariff)
	if err != nil {
		return err
	}

	shipment, err := order.NewShipment(
		cmd.PickupAddress(),
		cmd.DropoffAddress(),
		cmd.PickupLocation(),
		cmd.DropoffLocation(),
		cmd.DistanceMiles(),
		cmd.WeightLb(),
		cmd.IsUrgent(),
		cmd.Description(),
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		generateOrderNumber(cmd.OrderID()),
		cmd.CustomerID(),
		cmd.CustomerContact(),
		shipment,
		breakdown,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
