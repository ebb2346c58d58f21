package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand finishes the driver's active delivery.
// The delivery must be OUT_FOR_DELIVERY; on success it becomes DELIVERED, the
// source order is mirrored to its final status and the driver is free again.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete the driver's
// active delivery.
func NewCompleteDeliveryCommand(driverID kernel.UUID) (CompleteDeliveryCommand, error) {
	completeCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := completeCommand.setDriverID(driverID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DriverID returns the identifier of the reporting driver.
func (c CompleteDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *CompleteDeliveryCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
