package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Provides methods for storing, retrieving, and querying driver entities
// with their availability state and last reported location fix.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver aggregate by its identifier while
	// holding a row-level lock until the surrounding transaction ends.
	// Used together with DeliveryRepository.GetForUpdate to make the
	// assignment handshake atomic.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllEligible retrieves all drivers that can accept a new delivery:
	// active, verified, available and not engaged on another delivery.
	//
	// Business Rules:
	//   - Suspended or unverified drivers: Excluded
	//   - Offline drivers: Excluded
	//   - Drivers engaged on a delivery: Excluded
	//   - Online, verified, free drivers: Included
	GetAllEligible(ctx context.Context) ([]*driver.Driver, error)
}
