package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// CreateDeliveryCommandHandler handles the business logic for opening
// delivery records. Each order gets at most one delivery; a second create
// for the same order fails with delivery.ErrDuplicateDelivery.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
// Creates the delivery in PROCESSING status with a fresh tracking number.
// Uses a transaction to ensure the record is properly persisted or rolled back on error.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := delivery.NewDelivery(kernel.NewUUID(), cmd.OrderID(), cmd.Address(), cmd.ContactPhone())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
