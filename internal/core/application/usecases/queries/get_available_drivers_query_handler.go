package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler retrieves dispatch-eligible drivers.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for eligible driver queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all eligible drivers.
// Eligibility mirrors the dispatch rule: active, verified, available and
// not engaged on a delivery. Results are sorted by name.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAvailableDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_type,
			last_lat,
			last_lon,
			last_observed_at
		FROM drivers
		WHERE is_active
		  AND is_verified
		  AND is_available
		  AND current_delivery_id IS NULL
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAvailableDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Name,
			&row.VehicleType,
			&row.LastLat,
			&row.LastLon,
			&row.LastObservedAt,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = driverID

		drivers = append(drivers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
