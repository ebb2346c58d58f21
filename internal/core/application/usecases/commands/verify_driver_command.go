package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrVerifyDriverCommandIsNotConstructed = errors.New(
	"VerifyDriverCommand must be created via NewVerifyDriverCommand constructor",
)

// VerifyDriverCommand marks a registered driver as verified, one of the
// preconditions for dispatch eligibility.
type VerifyDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyDriverCommand creates a command to verify a driver.
func NewVerifyDriverCommand(driverID kernel.UUID) (VerifyDriverCommand, error) {
	verifyCommand := VerifyDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := verifyCommand.setDriverID(driverID); err != nil {
		return VerifyDriverCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyDriverCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to verify.
func (c VerifyDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *VerifyDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
