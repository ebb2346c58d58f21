package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusMeters is the mean Earth radius used by the haversine formula.
	earthRadiusMeters = 6371008.8
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint to ensure
// the coordinates are valid WGS-84 degrees.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a position on Earth as validated WGS-84 coordinates.
// GeoPoint is an immutable value object; the zero value is invalid and fails
// validation, so instances must be created through NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Position: %s", point) // Output: GeoPoint(40.712800,-74.006000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [-90..90] degrees and longitude within [-180..180]
// degrees. Returns an error if either coordinate is outside its valid range.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
// The zero value of GeoPoint is invalid and fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation in the form "GeoPoint(lat,lon)".
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceMeters calculates the great-circle distance to another point in meters
// using the haversine formula. Straight-line distance over the Earth's surface;
// road routing is out of scope.
//
// Both points must be properly constructed for the calculation to succeed.
//
// Example:
//
//	nyc, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	la, _ := kernel.NewGeoPoint(34.0522, -118.2437)
//	meters, err := nyc.DistanceMeters(la) // ≈ 3.94e6
func (p GeoPoint) DistanceMeters(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	const degToRad = math.Pi / 180
	dLat := (other.latitude - p.latitude) * degToRad
	dLon := (other.longitude - p.longitude) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p.latitude*degToRad)*math.Cos(other.latitude*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// setLatitude sets the latitude with range validation.
// Pointer receiver is used for the private setters to enable self-encapsulated
// validation during construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}
