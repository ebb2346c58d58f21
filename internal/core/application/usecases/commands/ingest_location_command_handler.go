package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// IngestLocationCommandHandler folds one GPS observation into system state.
// Fixes for one driver serialize on the driver row lock, which is what makes
// the per-driver monotonicity rule reliable under concurrent pushes. A stale
// fix surfaces as driver.ErrStaleFix; transports treat it as a silent drop.
type IngestLocationCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.EventPublisher
}

// NewIngestLocationCommandHandler creates a handler for location ingestion.
// The publisher may be nil when the push channel is disabled.
func NewIngestLocationCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.EventPublisher,
) IngestLocationCommandHandler {
	return IngestLocationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the observation.
// Accepted fixes update the driver's last known location and, while the
// driver is engaged, the tracked delivery's current position. Position
// updates against an already-closed delivery are dropped; the fix itself
// still counts for the driver.
func (h IngestLocationCommandHandler) Handle(ctx context.Context, cmd IngestLocationCommand) error {
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
	reporter, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = reporter.RecordFix(cmd.Fix()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, reporter); err != nil {
		return err
	}

	var tracked *delivery.Delivery
	if deliveryID := reporter.CurrentDeliveryID(); deliveryID != nil {
		deliveryRepo := uow.DeliveryRepository()

		tracked, err = deliveryRepo.Get(ctx, *deliveryID)
		if err != nil {
			return err
		}

		err = tracked.UpdatePosition(cmd.Fix().Position())
		switch {
		case errors.Is(err, delivery.ErrDeliveryClosed):
			tracked = nil
		case err != nil:
			return err
		default:
			if err = deliveryRepo.Update(ctx, tracked); err != nil {
				return err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if tracked != nil {
		publishSnapshot(h.publisher, tracked)
	}
	return nil
}
