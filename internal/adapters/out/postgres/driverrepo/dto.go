// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence, converting between the driver aggregate and its
// flat database representation.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The last accepted location fix is flattened into nullable
// columns; all of them are set or none of them are.
type DriverDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"not null"`
	Phone             string     `gorm:"not null"`
	VehicleType       string     `gorm:"not null"`
	IsVerified        bool       `gorm:"index"`
	IsActive          bool       `gorm:"index"`
	IsAvailable       bool       `gorm:"index"`
	CurrentDeliveryID *uuid.UUID `gorm:"type:uuid;index"`
	LastLat           *float64
	LastLon           *float64
	LastSpeed         *float64
	LastHeading       *float64
	LastAccuracy      *float64
	LastObservedAt    *time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		VehicleType: aggregate.VehicleType(),
		IsVerified:  aggregate.IsVerified(),
		IsActive:    aggregate.IsActive(),
		IsAvailable: aggregate.IsAvailable(),
	}

	if id := aggregate.CurrentDeliveryID(); id != nil {
		raw := id.Bytes()
		dto.CurrentDeliveryID = &raw
	}

	if fix := aggregate.LastFix(); fix != nil {
		lat := fix.Position().Latitude()
		lon := fix.Position().Longitude()
		observedAt := fix.ObservedAt()

		dto.LastLat = &lat
		dto.LastLon = &lon
		dto.LastSpeed = fix.Speed()
		dto.LastHeading = fix.Heading()
		dto.LastAccuracy = fix.Accuracy()
		dto.LastObservedAt = &observedAt
	}

	return dto
}

// toDomain converts a database DTO to a driver domain aggregate
// using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentDeliveryID *kernel.UUID
	if dto.CurrentDeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.CurrentDeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}

		currentDeliveryID = &dID
	}

	var lastFix *driver.LocationFix
	if dto.LastLat != nil && dto.LastLon != nil && dto.LastObservedAt != nil {
		position, posErr := kernel.NewGeoPoint(*dto.LastLat, *dto.LastLon)
		if posErr != nil {
			return nil, posErr
		}

		fix, fixErr := driver.NewLocationFix(
			position, dto.LastSpeed, dto.LastHeading, dto.LastAccuracy, *dto.LastObservedAt)
		if fixErr != nil {
			return nil, fixErr
		}

		lastFix = &fix
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Phone,
		dto.VehicleType,
		dto.IsVerified,
		dto.IsActive,
		dto.IsAvailable,
		currentDeliveryID,
		lastFix,
	)
}
