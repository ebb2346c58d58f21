package http

import (
	"net/http"
	"sync"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/metrics"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// trackingMessage is the wire form of one pushed snapshot. Like the polled
// tracking view it carries no driver identity.
type trackingMessage struct {
	DeliveryID     string   `json:"deliveryId"`
	TrackingNumber string   `json:"trackingNumber"`
	Status         string   `json:"status"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// TrackingHub fans tracking events out to connected websocket clients.
// It implements ports.EventPublisher; Publish never blocks command
// handling, a client that cannot keep up is dropped.
type TrackingHub struct {
	mu      sync.Mutex
	clients map[chan trackingMessage]struct{}
	sink    *metrics.PromSink
}

// NewTrackingHub creates an empty hub. The sink is optional.
func NewTrackingHub(sink *metrics.PromSink) *TrackingHub {
	return &TrackingHub{
		clients: make(map[chan trackingMessage]struct{}),
		sink:    sink,
	}
}

// Publish pushes one snapshot to every connected client.
func (h *TrackingHub) Publish(event ports.TrackingEvent) {
	message := trackingMessage{
		DeliveryID:     event.DeliveryID.String(),
		TrackingNumber: event.TrackingNumber,
		Status:         event.Status,
		Latitude:       event.Latitude,
		Longitude:      event.Longitude,
	}

	h.mu.Lock()
	for client := range h.clients {
		select {
		case client <- message:
		default:
			// slow consumer, drop it
			delete(h.clients, client)
			close(client)
		}
	}
	h.mu.Unlock()

	if h.sink != nil {
		h.sink.RecordPublished()
	}
}

// Subscribe upgrades the connection and streams snapshots until the client
// disconnects.
func (h *TrackingHub) Subscribe(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	send := make(chan trackingMessage, 32)
	h.mu.Lock()
	h.clients[send] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer conn.Close()
		for message := range send {
			if err := conn.WriteJSON(message); err != nil {
				h.remove(send)
				return
			}
		}
	}()

	// Drain control frames; a read error means the client went away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(send)
			return nil
		}
	}
}

func (h *TrackingHub) remove(send chan trackingMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[send]; ok {
		delete(h.clients, send)
		close(send)
	}
}
