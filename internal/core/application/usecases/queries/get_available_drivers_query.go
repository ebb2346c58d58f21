package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves all dispatch-eligible drivers with their
// last reported position, for the operations dashboard map.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query to retrieve eligible drivers.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// GetAvailableDriversQueryResponse is one dashboard driver row.
// Location fields are nil for drivers that have not reported a fix yet.
type GetAvailableDriversQueryResponse struct {
	ID             kernel.UUID
	Name           string
	VehicleType    string
	LastLat        *float64
	LastLon        *float64
	LastObservedAt *time.Time
}
