package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTrackingQueryHandler serves the public tracking read model.
// The column list is the whole contract: no driver columns are selected, so
// nothing about the driver can ever leak onto the public surface by accident.
type GetTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewGetTrackingQueryHandler(db *gorm.DB) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns errs.ErrObjectNotFound for unknown tracking numbers.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingQuery,
) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	var response GetTrackingQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			current_lat,
			current_lon,
			address,
			updated_at
		FROM deliveries
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(
		&response.Status,
		&response.CurrentLat,
		&response.CurrentLon,
		&response.Address,
		&response.LastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetTrackingQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber().String())
	}
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	return response, nil
}
