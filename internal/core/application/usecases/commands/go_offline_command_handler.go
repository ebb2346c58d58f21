package commands

import (
	"context"
)

// GoOfflineCommandHandler handles the driver offline transition.
// The aggregate rejects the transition while the driver is engaged, so a
// delivery in progress can never silently lose its driver.
type GoOfflineCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewGoOfflineCommandHandler creates a handler for the offline transition.
func NewGoOfflineCommandHandler(uowFactory DriverUoWFactory) GoOfflineCommandHandler {
	return GoOfflineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the go-offline command.
func (h GoOfflineCommandHandler) Handle(ctx context.Context, cmd GoOfflineCommand) error {
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

	driverRepo := uow.DriverRepository()
	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.GoOffline(); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
