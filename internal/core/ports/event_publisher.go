package ports

import (
	"dispatch/internal/core/domain/model/kernel"
)

// TrackingEvent is a point-in-time snapshot of a delivery pushed to
// subscribed tracking clients. It carries no driver identity.
type TrackingEvent struct {
	DeliveryID     kernel.UUID
	TrackingNumber string
	Status         string
	Latitude       *float64
	Longitude      *float64
}

// EventPublisher pushes tracking events to interested consumers.
// The push channel is best-effort: implementations must not block
// command handling, and a missing publisher is a valid configuration.
type EventPublisher interface {
	Publish(event TrackingEvent)
}
