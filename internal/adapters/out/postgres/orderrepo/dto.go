// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders live in a table shared with the commerce system;
// this engine reads confirmed rows and writes back terminal outcomes only.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order records.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status          string    `gorm:"type:varchar(20);index"`
	DeliveryAddress string
	ContactPhone    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Status:          string(aggregate.Status()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		ContactPhone:    aggregate.ContactPhone(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Status(dto.Status),
		dto.DeliveryAddress,
		dto.ContactPhone,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
