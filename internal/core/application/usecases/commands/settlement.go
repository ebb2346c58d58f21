package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// settleTerminal applies the cross-aggregate effects of a delivery reaching a
// terminal status, inside the caller's transaction: the previously engaged
// driver is released and the source order is marked with the matching final
// status. A missing order row is tolerated; in shared-database deployments the
// commerce system may prune orders independently.
func settleTerminal(
	ctx context.Context,
	uow UoW,
	aggregate *delivery.Delivery,
	previousDriverID *kernel.UUID,
) error {
	if previousDriverID != nil {
		driverRepo := uow.DriverRepository()

		engaged, err := driverRepo.GetForUpdate(ctx, *previousDriverID)
		if err != nil {
			return err
		}

		engaged.Release()
		if err = driverRepo.Update(ctx, engaged); err != nil {
			return err
		}
	}

	orderRepo := uow.OrderRepository()
	linkedOrder, err := orderRepo.Get(ctx, aggregate.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if aggregate.Status() == delivery.Delivered {
		err = linkedOrder.MarkDelivered()
	} else {
		err = linkedOrder.MarkCancelled()
	}
	if err != nil {
		return err
	}

	return orderRepo.Update(ctx, linkedOrder)
}
