package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrFindNearestDriverQueryIsNotConstructed = errors.New(
	"FindNearestDriverQuery must be created via NewFindNearestDriverQuery constructor",
)

// FindNearestDriverQuery selects the eligible driver closest to a destination
// by straight-line distance. This is the read side of dispatch: it answers
// "who would get this job" without binding anyone.
type FindNearestDriverQuery struct { //nolint:recvcheck //using for validation
	destination kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewFindNearestDriverQuery creates a query for the given destination.
func NewFindNearestDriverQuery(latitude float64, longitude float64) (FindNearestDriverQuery, error) {
	destination, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return FindNearestDriverQuery{}, err
	}

	return FindNearestDriverQuery{
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindNearestDriverQuery) Validate() error {
	return q.guard.Validate(ErrFindNearestDriverQueryIsNotConstructed)
}

// Destination returns the point the driver should be closest to.
func (q FindNearestDriverQuery) Destination() kernel.GeoPoint {
	return q.destination
}

// FindNearestDriverQueryResponse identifies the selected driver.
type FindNearestDriverQueryResponse struct {
	DriverID       kernel.UUID
	Name           string
	DistanceMeters float64
}
