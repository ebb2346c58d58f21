// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying delivery records
// with their status, assignment and last known position.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// Returns delivery.ErrDuplicateDelivery when a record for the same
	// order already exists.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery aggregate by its identifier while
	// holding a row-level lock until the surrounding transaction ends.
	// Callers must invoke it inside a started UnitOfWork transaction;
	// it is the mechanism that keeps driver assignment atomic under
	// concurrent dispatch attempts.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery created for the given order.
	// Returns errs.ObjectNotFoundError when the order has no delivery yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetAllUnassigned retrieves deliveries that are awaiting driver assignment,
	// oldest first. Used by the dispatch workflow to pick pending work.
	GetAllUnassigned(ctx context.Context) ([]*delivery.Delivery, error)
}
