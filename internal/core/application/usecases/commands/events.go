package commands

import (
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// publishSnapshot pushes the delivery's current state to the optional
// tracking event publisher. A nil publisher disables the push channel;
// state in the database stays authoritative either way.
func publishSnapshot(publisher ports.EventPublisher, aggregate *delivery.Delivery) {
	if publisher == nil {
		return
	}

	event := ports.TrackingEvent{
		DeliveryID:     aggregate.ID(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		Status:         aggregate.Status().String(),
	}

	if position := aggregate.CurrentPosition(); position != nil {
		lat := position.Latitude()
		lon := position.Longitude()
		event.Latitude = &lat
		event.Longitude = &lon
	}

	publisher.Publish(event)
}
