package queries

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// FindNearestDriverQueryHandler answers nearest-driver lookups.
// Unlike the other read models it goes through the driver repository and the
// domain dispatcher, so the selection rule (haversine minimum, lowest id on
// ties) has exactly one implementation shared with the dispatch job.
type FindNearestDriverQueryHandler struct {
	driverRepo ports.DriverRepository
}

// NewFindNearestDriverQueryHandler creates a handler for nearest-driver lookups.
func NewFindNearestDriverQueryHandler(driverRepo ports.DriverRepository) FindNearestDriverQueryHandler {
	return FindNearestDriverQueryHandler{driverRepo: driverRepo}
}

// Handle executes the lookup.
// Returns services.ErrNoDriverAvailable when no eligible driver with a known
// location exists.
func (h FindNearestDriverQueryHandler) Handle(
	ctx context.Context,
	query FindNearestDriverQuery,
) (FindNearestDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindNearestDriverQueryResponse{}, err
	}

	candidates, err := h.driverRepo.GetAllEligible(ctx)
	if err != nil {
		return FindNearestDriverQueryResponse{}, err
	}

	nearest, distance, err := services.NewDriverDispatcher().FindNearest(query.Destination(), candidates)
	if err != nil {
		return FindNearestDriverQueryResponse{}, err
	}

	return FindNearestDriverQueryResponse{
		DriverID:       nearest.ID(),
		Name:           nearest.Name(),
		DistanceMeters: distance,
	}, nil
}
