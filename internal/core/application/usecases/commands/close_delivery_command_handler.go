package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// CloseDeliveryCommandHandler handles administrative termination.
// Closing follows the same settlement path as a regular terminal transition:
// driver released, order mirrored, all in one transaction.
type CloseDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewCloseDeliveryCommandHandler creates a handler for closing deliveries.
// The publisher may be nil when the push channel is disabled.
func NewCloseDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) CloseDeliveryCommandHandler {
	return CloseDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the close command.
// Closing an already-closed delivery with the same status is an idempotent
// success; with a different terminal status it fails with
// delivery.ErrDeliveryClosed.
func (h CloseDeliveryCommandHandler) Handle(ctx context.Context, cmd CloseDeliveryCommand) error {
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
	aggregate, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	previousDriverID := aggregate.DriverID()

	if err = aggregate.TransitionTo(cmd.Status()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = settleTerminal(ctx, uow, aggregate, previousDriverID); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishSnapshot(h.publisher, aggregate)
	return nil
}
