// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, handling conversion between domain entities and their
// database representation.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The order link and the tracking number both carry unique
// indexes: the first enforces at most one delivery per order, the second
// makes the public lookup key collision-free at the storage level.
type DeliveryDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	TrackingNumber string     `gorm:"type:varchar(24);uniqueIndex;not null"`
	Status         string     `gorm:"type:varchar(20);index"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	CurrentLat     *float64
	CurrentLon     *float64
	Address        string
	ContactPhone   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var currentLat, currentLon *float64
	if position := aggregate.CurrentPosition(); position != nil {
		lat := position.Latitude()
		lon := position.Longitude()
		currentLat = &lat
		currentLon = &lon
	}

	return DeliveryDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		Status:         aggregate.Status().String(),
		DriverID:       driverID,
		CurrentLat:     currentLat,
		CurrentLon:     currentLon,
		Address:        aggregate.Address(),
		ContactPhone:   aggregate.ContactPhone(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate
// using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.ParseTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	var currentPosition *kernel.GeoPoint
	if dto.CurrentLat != nil && dto.CurrentLon != nil {
		position, posErr := kernel.NewGeoPoint(*dto.CurrentLat, *dto.CurrentLon)
		if posErr != nil {
			return nil, posErr
		}

		currentPosition = &position
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		trackingNumber,
		status,
		driverID,
		currentPosition,
		dto.Address,
		dto.ContactPhone,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
