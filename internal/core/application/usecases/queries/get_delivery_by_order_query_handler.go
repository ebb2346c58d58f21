package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryByOrderQueryHandler resolves an order to its delivery row.
type GetDeliveryByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderQueryHandler creates a handler for order-to-delivery lookups.
// Requires a GORM database connection for query execution.
func NewGetDeliveryByOrderQueryHandler(db *gorm.DB) GetDeliveryByOrderQueryHandler {
	return GetDeliveryByOrderQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ErrObjectNotFound when the order has no delivery.
func (h GetDeliveryByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderQuery,
) (GetDeliveryByOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryByOrderQueryResponse{}, err
	}

	var response GetDeliveryByOrderQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			created_at
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.TrackingNumber,
		&response.Status,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryByOrderQueryResponse{}, errs.NewObjectNotFoundError(
			"orderID", query.OrderID().String())
	}
	if err != nil {
		return GetDeliveryByOrderQueryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDeliveryByOrderQueryResponse{}, err
	}
	response.ID = deliveryID

	return response, nil
}
