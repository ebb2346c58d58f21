package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// TransitionDeliveryCommandHandler handles delivery status transitions.
// Terminal transitions release the engaged driver and mirror the outcome
// onto the source order within the same transaction.
//
// Example:
//
//	handler := NewTransitionDeliveryCommandHandler(uowFactory, publisher)
//	cmd, _ := NewTransitionDeliveryCommand(deliveryID, delivery.InTransit)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, delivery.ErrDeliveryClosed):
//	    log.Println("delivery already terminal")
//	case errors.Is(err, delivery.ErrInvalidTransition):
//	    log.Println("transition not allowed")
//	case err != nil:
//	    log.Printf("transition failed: %v", err)
//	}
type TransitionDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewTransitionDeliveryCommandHandler creates a handler for status transitions.
// The publisher may be nil when the push channel is disabled.
func NewTransitionDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) TransitionDeliveryCommandHandler {
	return TransitionDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition command.
// Locks the delivery row, applies the graph-validated transition, and on a
// terminal status settles the driver and order sides before committing.
func (h TransitionDeliveryCommandHandler) Handle(ctx context.Context, cmd TransitionDeliveryCommand) error {
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

	// TransitionTo clears the driver link on Failed/Cancelled, so the engaged
	// driver has to be captured before the status changes.
	previousDriverID := aggregate.DriverID()

	if err = aggregate.TransitionTo(cmd.Status()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Status().IsTerminal() {
		if err = settleTerminal(ctx, uow, aggregate, previousDriverID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishSnapshot(h.publisher, aggregate)
	return nil
}
