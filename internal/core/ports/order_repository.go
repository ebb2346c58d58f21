package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order records
// produced by the commerce system. The engine only reads confirmed orders
// and mirrors terminal delivery outcomes back onto them.
type OrderRepository interface {
	// Add persists a new order record.
	// Exists to seed orders in tests and local environments; in production
	// the commerce system writes the orders table.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order record.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetConfirmedWithoutDelivery retrieves confirmed orders that have no
	// delivery record yet, oldest first. Used by the order sync workflow
	// to backfill deliveries idempotently.
	GetConfirmedWithoutDelivery(ctx context.Context) ([]*order.Order, error)
}
