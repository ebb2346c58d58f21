package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryByOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryByOrderQuery must be created via NewGetDeliveryByOrderQuery constructor",
)

// GetDeliveryByOrderQuery looks up the delivery opened for a given order.
// Orders and deliveries are one-to-one, so the lookup returns at most one row.
type GetDeliveryByOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderQuery creates a query for one order identifier.
func NewGetDeliveryByOrderQuery(orderID kernel.UUID) (GetDeliveryByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryByOrderQuery{}, err
	}

	return GetDeliveryByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderQueryIsNotConstructed)
}

// OrderID returns the order identifier being looked up.
func (q GetDeliveryByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetDeliveryByOrderQueryResponse is the read model of one delivery row.
type GetDeliveryByOrderQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string
	CreatedAt      time.Time
}
