package commands

import (
	"context"
)

// GoOnlineCommandHandler handles the driver online transition.
type GoOnlineCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewGoOnlineCommandHandler creates a handler for the online transition.
func NewGoOnlineCommandHandler(uowFactory DriverUoWFactory) GoOnlineCommandHandler {
	return GoOnlineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the go-online command.
func (h GoOnlineCommandHandler) Handle(ctx context.Context, cmd GoOnlineCommand) error {
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

	aggregate.GoOnline()

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
