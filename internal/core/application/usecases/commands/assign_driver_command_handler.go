package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
)

// ErrAssignmentConflict signals that the delivery or the driver was claimed
// by a concurrent assignment between selection and commit. The transaction is
// rolled back; neither aggregate is partially mutated.
var ErrAssignmentConflict = errors.New("assignment conflict")

// AssignDriverCommandHandler orchestrates the atomic driver assignment.
// Both rows are loaded with row-level locks inside a single transaction, the
// check-and-set preconditions are evaluated under those locks, and both
// aggregates are written before commit. Exactly one of two concurrent
// assignments for the same driver or delivery can succeed.
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignDriverCommandHandler creates a handler for assignment operations.
// The publisher may be nil when the push channel is disabled.
func NewAssignDriverCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.EventPublisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
// On success the delivery is PICKED_UP and linked to the driver, and the
// driver is unavailable with the delivery as its single engagement. A lost
// race on either side returns ErrAssignmentConflict.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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
	driverRepo := uow.DriverRepository()

	// Lock order is fixed (delivery, then driver) so concurrent assignments
	// cannot deadlock each other.
	aggregate, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	candidate, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDriver(candidate.ID()); err != nil {
		if errors.Is(err, delivery.ErrAlreadyAssigned) || errors.Is(err, delivery.ErrDeliveryClosed) {
			return fmt.Errorf("%w: %w", ErrAssignmentConflict, err)
		}
		return err
	}

	if err = candidate.BeginDelivery(aggregate.ID()); err != nil {
		if errors.Is(err, driver.ErrDriverNotAvailable) {
			return fmt.Errorf("%w: %w", ErrAssignmentConflict, err)
		}
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, candidate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishSnapshot(h.publisher, aggregate)
	return nil
}
