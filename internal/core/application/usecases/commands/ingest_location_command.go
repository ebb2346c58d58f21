package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrIngestLocationCommandIsNotConstructed = errors.New(
	"IngestLocationCommand must be created via NewIngestLocationCommand constructor",
)

// IngestLocationCommand carries one GPS observation from a driver client.
// The observation is ephemeral: its effect is folded into the driver's last
// fix and, when the driver is engaged, into the delivery's current position.
type IngestLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	fix      driver.LocationFix

	guard guard.ConstructorGuard
}

// NewIngestLocationCommand creates a command from one raw observation.
// Coordinates are range-checked and observedAt must be set; speed, heading
// and accuracy are optional.
func NewIngestLocationCommand(
	driverID kernel.UUID,
	latitude float64,
	longitude float64,
	speed *float64,
	heading *float64,
	accuracy *float64,
	observedAt time.Time,
) (IngestLocationCommand, error) {
	if err := driverID.Validate(); err != nil {
		return IngestLocationCommand{}, err
	}

	position, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return IngestLocationCommand{}, err
	}

	fix, err := driver.NewLocationFix(position, speed, heading, accuracy, observedAt)
	if err != nil {
		return IngestLocationCommand{}, err
	}

	return IngestLocationCommand{
		driverID: driverID,
		fix:      fix,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c IngestLocationCommand) Validate() error {
	return c.guard.Validate(ErrIngestLocationCommandIsNotConstructed)
}

// DriverID returns the identifier of the reporting driver.
func (c IngestLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Fix returns the validated location observation.
func (c IngestLocationCommand) Fix() driver.LocationFix {
	return c.fix
}
