package commands

import (
	"context"
)

// UpsertTariffCommandHandler handles tariff administration.
// Swaps the active tariff version atomically: deactivate the current one,
// persist the new one as active.
type UpsertTariffCommandHandler struct {
	uowFactory TariffUoWFactory
}

// NewUpsertTariffCommandHandler creates a handler for tariff publication.
func NewUpsertTariffCommandHandler(uowFactory TariffUoWFactory) UpsertTariffCommandHandler {
	return UpsertTariffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tariff publication command.
func (h *UpsertTariffCommandHandler) Handle(ctx context.Context, cmd UpsertTariffCommand) error {
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

	tariffRepo := uow.TariffRepository()
	if err := tariffRepo.DeactivateActive(ctx); err != nil {
		return err
	}

	if err := tariffRepo.Add(ctx, cmd.Tariff()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
