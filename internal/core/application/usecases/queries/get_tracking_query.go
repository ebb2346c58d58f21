// Package queries contains read-only operations over the dispatch store.
// Read models bypass the aggregates and query the database directly, the
// read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery retrieves the public tracking view of a delivery by its
// tracking number. This is the unauthenticated read polled by customer
// tracking pages, so the response deliberately carries no driver identity
// or contact details.
//
// Example:
//
//	number, _ := kernel.ParseTrackingNumber("TRK-ABCDEFGHJKMNPQRSTVWX")
//	query, _ := NewGetTrackingQuery(number)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking number
//	}
type GetTrackingQuery struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a query for one tracking number.
func NewGetTrackingQuery(trackingNumber kernel.TrackingNumber) (GetTrackingQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}

	return GetTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the number being looked up.
func (q GetTrackingQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// GetTrackingQueryResponse is the public tracking view.
// CurrentLat/CurrentLon are nil until the first accepted location fix.
type GetTrackingQueryResponse struct {
	Status      string
	CurrentLat  *float64
	CurrentLon  *float64
	Address     string
	LastUpdated time.Time
}
