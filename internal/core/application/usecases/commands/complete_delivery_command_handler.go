package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
)

// CompleteDeliveryCommandHandler handles the driver-reported completion.
// In one transaction the delivery becomes DELIVERED, the order is mirrored
// and the driver is released back to the available pool.
//
// Example:
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCompleteDeliveryCommand(driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, driver.ErrNoActiveDelivery):
//	    log.Println("driver has nothing to complete")
//	case errors.Is(err, delivery.ErrInvalidTransition):
//	    log.Println("delivery is not out for delivery yet")
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// The publisher may be nil when the push channel is disabled.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command.
// The delivery must be in OUT_FOR_DELIVERY; earlier stages fail with
// delivery.ErrInvalidTransition and a free driver fails with
// driver.ErrNoActiveDelivery.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	deliveryRepo := uow.DeliveryRepository()

	// The engagement pointer is read without a lock first, so the row locks
	// can be taken in the same fixed order as assignment (delivery, then
	// driver) and the two handlers cannot deadlock each other.
	reporter, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	deliveryID := reporter.CurrentDeliveryID()
	if deliveryID == nil {
		return driver.ErrNoActiveDelivery
	}

	aggregate, err := deliveryRepo.GetForUpdate(ctx, *deliveryID)
	if err != nil {
		return err
	}

	reporter, err = driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	// The engagement may have moved between the unlocked read and the lock.
	current := reporter.CurrentDeliveryID()
	if current == nil || *current != aggregate.ID() {
		return driver.ErrNoActiveDelivery
	}

	if err = aggregate.TransitionTo(delivery.Delivered); err != nil {
		return err
	}

	if err = reporter.CompleteDelivery(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, reporter); err != nil {
		return err
	}

	// Driver already released above; settle only the order side.
	if err = settleTerminal(ctx, uow, aggregate, nil); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishSnapshot(h.publisher, aggregate)
	return nil
}
