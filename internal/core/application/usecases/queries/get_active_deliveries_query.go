package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves all non-terminal deliveries for the
// operations dashboard, including the assigned driver's name where one exists.
// This is an operator surface; it is allowed to see driver identity.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to retrieve in-flight deliveries.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is one dashboard row.
// DriverName is nil while the delivery is still unassigned.
type GetActiveDeliveriesQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	TrackingNumber string
	Status         string
	DriverName     *string
	CurrentLat     *float64
	CurrentLon     *float64
	Address        string
	UpdatedAt      time.Time
}
