package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler handles driver registration.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// The new driver starts unverified and offline.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
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

	aggregate, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Phone(), cmd.VehicleType())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
