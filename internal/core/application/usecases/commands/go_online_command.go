package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGoOnlineCommandIsNotConstructed = errors.New(
	"GoOnlineCommand must be created via NewGoOnlineCommand constructor",
)

// GoOnlineCommand marks a driver as available for assignments.
// Going online repeatedly is an idempotent success.
type GoOnlineCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGoOnlineCommand creates a command to bring a driver online.
func NewGoOnlineCommand(driverID kernel.UUID) (GoOnlineCommand, error) {
	onlineCommand := GoOnlineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := onlineCommand.setDriverID(driverID); err != nil {
		return GoOnlineCommand{}, err
	}

	return onlineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c GoOnlineCommand) Validate() error {
	return c.guard.Validate(ErrGoOnlineCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver going online.
func (c GoOnlineCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *GoOnlineCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
