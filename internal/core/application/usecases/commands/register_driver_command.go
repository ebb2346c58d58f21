package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrDriverNameIsRequired  = errors.New("driver name is required")
	ErrDriverPhoneIsRequired = errors.New("driver phone is required")
	ErrVehicleTypeIsRequired = errors.New("vehicle type is required")
)

// RegisterDriverCommand represents a request to register a new driver.
// Registered drivers start unverified and offline; they become eligible for
// dispatch only after verification and going online.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        string
	phone       string
	vehicleType string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
// Validates that the driver ID is valid and name, phone and vehicle type are present.
func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name string,
	phone string,
	vehicleType string,
) (RegisterDriverCommand, error) {
	registerCommand := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setDriverID(driverID),
		registerCommand.setName(name),
		registerCommand.setPhone(phone),
		registerCommand.setVehicleType(vehicleType),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's contact phone.
func (c RegisterDriverCommand) Phone() string {
	return c.phone
}

// VehicleType returns the driver's vehicle type.
func (c RegisterDriverCommand) VehicleType() string {
	return c.vehicleType
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrDriverPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterDriverCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}
