package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGoOfflineCommandIsNotConstructed = errors.New(
	"GoOfflineCommand must be created via NewGoOfflineCommand constructor",
)

// GoOfflineCommand marks a driver as unavailable for assignments.
// Fails with driver.ErrDriverBusy while a delivery is in progress.
type GoOfflineCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGoOfflineCommand creates a command to take a driver offline.
func NewGoOfflineCommand(driverID kernel.UUID) (GoOfflineCommand, error) {
	offlineCommand := GoOfflineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := offlineCommand.setDriverID(driverID); err != nil {
		return GoOfflineCommand{}, err
	}

	return offlineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c GoOfflineCommand) Validate() error {
	return c.guard.Validate(ErrGoOfflineCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver going offline.
func (c GoOfflineCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *GoOfflineCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
