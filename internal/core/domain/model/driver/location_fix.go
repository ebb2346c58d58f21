package driver

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrLocationFixIsNotConstructed is returned when using an improperly
// initialized LocationFix.
var ErrLocationFixIsNotConstructed = errors.New("LocationFix must be created via NewLocationFix constructor")

// LocationFix is a single GPS observation reported by a driver client.
// It is an ephemeral value object: a fix is consumed once, its effect folded
// into the driver's last known location and, when the driver is engaged, into
// the delivery's current position. Fixes are never stored individually.
//
// Speed (m/s), heading (degrees) and accuracy (meters) are optional; GPS
// hardware does not always report them.
type LocationFix struct {
	position   kernel.GeoPoint
	speed      *float64
	heading    *float64
	accuracy   *float64
	observedAt time.Time
	guard      guard.ConstructorGuard
}

// NewLocationFix creates a validated LocationFix.
// The position must be a constructed GeoPoint and observedAt must be non-zero;
// observedAt is the client-side observation time that drives the per-driver
// monotonicity rule.
func NewLocationFix(
	position kernel.GeoPoint,
	speed *float64,
	heading *float64,
	accuracy *float64,
	observedAt time.Time,
) (LocationFix, error) {
	if err := position.Validate(); err != nil {
		return LocationFix{}, err
	}
	if observedAt.IsZero() {
		return LocationFix{}, errs.NewValueIsRequiredError("observedAt")
	}

	return LocationFix{
		position:   position,
		speed:      speed,
		heading:    heading,
		accuracy:   accuracy,
		observedAt: observedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the LocationFix was properly constructed.
func (f LocationFix) Validate() error {
	return f.guard.Validate(ErrLocationFixIsNotConstructed)
}

// Position returns the observed coordinates.
func (f LocationFix) Position() kernel.GeoPoint {
	return f.position
}

// Speed returns the reported speed in m/s, or nil if not reported.
func (f LocationFix) Speed() *float64 {
	return f.speed
}

// Heading returns the direction of travel in degrees, or nil if not reported.
func (f LocationFix) Heading() *float64 {
	return f.heading
}

// Accuracy returns the GPS accuracy in meters, or nil if not reported.
func (f LocationFix) Accuracy() *float64 {
	return f.accuracy
}

// ObservedAt returns the client-side observation time.
func (f LocationFix) ObservedAt() time.Time {
	return f.observedAt
}
