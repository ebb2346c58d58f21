package commands

import (
	"context"
)

// VerifyDriverCommandHandler handles administrative driver verification.
type VerifyDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewVerifyDriverCommandHandler creates a handler for driver verification.
func NewVerifyDriverCommandHandler(uowFactory DriverUoWFactory) VerifyDriverCommandHandler {
	return VerifyDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command. Verification is idempotent.
func (h VerifyDriverCommandHandler) Handle(ctx context.Context, cmd VerifyDriverCommand) error {
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

	aggregate.Verify()

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
