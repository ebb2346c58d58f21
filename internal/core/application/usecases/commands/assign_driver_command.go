package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand binds a driver to a delivery atomically.
// Both sides are checked and mutated under row locks in one transaction:
// the delivery must still be unassigned (PROCESSING) and the driver must
// still be eligible. Losing either race yields ErrAssignmentConflict.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(driverID, deliveryID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAssignDriverCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrAssignmentConflict) {
//	    // another dispatcher won the race; pick a different driver
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	driverID   kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to a delivery.
// Validates both identifiers.
func NewAssignDriverCommand(driverID kernel.UUID, deliveryID kernel.UUID) (AssignDriverCommand, error) {
	assignCommand := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setDriverID(driverID),
		assignCommand.setDeliveryID(deliveryID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DeliveryID returns the identifier of the delivery to assign.
func (c AssignDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
