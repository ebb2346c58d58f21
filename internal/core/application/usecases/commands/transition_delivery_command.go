package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrTransitionDeliveryCommandIsNotConstructed = errors.New(
	"TransitionDeliveryCommand must be created via NewTransitionDeliveryCommand constructor",
)

// TransitionDeliveryCommand represents a request to move a delivery to a new
// lifecycle status. The transition graph is enforced by the aggregate; a
// same-status request is an idempotent success.
type TransitionDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewTransitionDeliveryCommand creates a command to change a delivery's status.
// Validates that the delivery ID and target status are valid.
func NewTransitionDeliveryCommand(deliveryID kernel.UUID, status delivery.Status) (TransitionDeliveryCommand, error) {
	transitionCommand := TransitionDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setDeliveryID(deliveryID),
		transitionCommand.setStatus(status),
	); err != nil {
		return TransitionDeliveryCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionDeliveryCommandIsNotConstructed if validation fails.
func (c TransitionDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTransitionDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to transition.
func (c TransitionDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the requested target status.
func (c TransitionDeliveryCommand) Status() delivery.Status {
	return c.status
}

func (c *TransitionDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *TransitionDeliveryCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
