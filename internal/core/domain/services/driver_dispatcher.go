package services

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrNoDriverAvailable is returned when no driver can serve a dispatch request.
// This occurs when the candidate set is empty, when no candidate is eligible,
// or when every eligible candidate lacks a known location.
var ErrNoDriverAvailable = errors.New("no driver available")

// DriverDispatcher is a domain service that selects the optimal driver for a
// delivery destination.
//
// Selection rules:
//   - only eligible drivers participate (active, verified, available, free)
//   - drivers without a known last location are excluded
//   - the driver minimizing great-circle distance to the destination wins
//   - exact distance ties break toward the lexicographically lowest driver id,
//     so selection is deterministic
//
// The dispatcher only selects; the atomic binding of driver to delivery is the
// assignment command's job, under a persistence-layer lock.
//
// Example usage:
//
//	dispatcher := services.NewDriverDispatcher()
//	nearest, distance, err := dispatcher.FindNearest(destination, drivers)
//	if errors.Is(err, services.ErrNoDriverAvailable) {
//	    // nobody to dispatch right now, retry later
//	}
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// FindNearest returns the eligible located driver closest to the destination
// and the distance to it in meters.
//
// Returns ErrNoDriverAvailable if the eligible set with known locations is
// empty. Validation errors from malformed candidates are returned as-is.
func (d DriverDispatcher) FindNearest(
	destination kernel.GeoPoint,
	candidates []*driver.Driver,
) (*driver.Driver, float64, error) {
	if err := destination.Validate(); err != nil {
		return nil, 0, err
	}

	var (
		best         *driver.Driver
		bestDistance float64
	)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, 0, err
		}

		if !candidate.IsEligible() || candidate.LastFix() == nil {
			continue
		}

		distance, err := candidate.LastFix().Position().DistanceMeters(destination)
		if err != nil {
			return nil, 0, err
		}

		if best == nil || distance < bestDistance ||
			(distance == bestDistance && candidate.ID().String() < best.ID().String()) {
			best = candidate
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, 0, ErrNoDriverAvailable
	}

	return best, bestDistance, nil
}
