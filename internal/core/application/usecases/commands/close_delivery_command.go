package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCloseDeliveryCommandIsNotConstructed = errors.New(
		"CloseDeliveryCommand must be created via NewCloseDeliveryCommand constructor",
	)
	ErrCloseStatusIsInvalid = errors.New("close status must be FAILED or CANCELLED")
)

// CloseDeliveryCommand administratively terminates a delivery as FAILED or
// CANCELLED. The engaged driver, if any, is always released so a dead
// delivery never strands a driver.
type CloseDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewCloseDeliveryCommand creates a command to close a delivery.
// Only the FAILED and CANCELLED terminal statuses are accepted.
func NewCloseDeliveryCommand(deliveryID kernel.UUID, status delivery.Status) (CloseDeliveryCommand, error) {
	closeCommand := CloseDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		closeCommand.setDeliveryID(deliveryID),
		closeCommand.setStatus(status),
	); err != nil {
		return CloseDeliveryCommand{}, err
	}

	return closeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCloseDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to close.
func (c CloseDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the requested terminal status.
func (c CloseDeliveryCommand) Status() delivery.Status {
	return c.status
}

func (c *CloseDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CloseDeliveryCommand) setStatus(status delivery.Status) error {
	if status != delivery.Failed && status != delivery.Cancelled {
		return ErrCloseStatusIsInvalid
	}

	c.status = status
	return nil
}
