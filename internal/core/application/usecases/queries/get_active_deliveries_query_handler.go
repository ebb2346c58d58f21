package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight deliveries for the dashboard.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for dashboard delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal deliveries.
// Results are sorted oldest first so the longest-waiting work surfaces on top.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.tracking_number,
			d.status,
			dr.name,
			d.current_lat,
			d.current_lon,
			d.address,
			d.updated_at
		FROM deliveries d
		LEFT JOIN drivers dr ON dr.id = d.driver_id
		WHERE d.status NOT IN (?, ?, ?)
		ORDER BY d.created_at
	`, delivery.Delivered.String(), delivery.Failed.String(), delivery.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetActiveDeliveriesQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&row.TrackingNumber,
			&row.Status,
			&row.DriverName,
			&row.CurrentLat,
			&row.CurrentLon,
			&row.Address,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = deliveryID

		linkedOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.OrderID = linkedOrderID

		deliveries = append(deliveries, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
