// Package http is the inbound HTTP adapter. It translates the generated
// server bindings into application commands and queries.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateDelivery     commands.CreateDeliveryCommandHandler
	AssignDriver       commands.AssignDriverCommandHandler
	TransitionDelivery commands.TransitionDeliveryCommandHandler
	CloseDelivery      commands.CloseDeliveryCommandHandler
	RegisterDriver     commands.RegisterDriverCommandHandler
	VerifyDriver       commands.VerifyDriverCommandHandler
	GoOnline           commands.GoOnlineCommandHandler
	GoOffline          commands.GoOfflineCommandHandler
	IngestLocation     commands.IngestLocationCommandHandler
	CompleteDelivery   commands.CompleteDeliveryCommandHandler
	SyncOrders         commands.SyncConfirmedOrdersCommandHandler

	GetActiveDeliveries queries.GetActiveDeliveriesQueryHandler
	GetAvailableDrivers queries.GetAvailableDriversQueryHandler
	FindNearestDriver   queries.FindNearestDriverQueryHandler
	GetTracking         queries.GetTrackingQueryHandler
	GetDeliveryByOrder  queries.GetDeliveryByOrderQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	sink     *metrics.PromSink
}

// NewServer creates a new HTTP server. The metrics sink may be nil.
func NewServer(handlers Handlers, sink *metrics.PromSink) *Server {
	return &Server{
		handlers: handlers,
		sink:     sink,
	}
}

// CreateDelivery handles POST /api/v1/deliveries - opens a delivery for a
// confirmed order.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body servers.NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(body.OrderId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderID, body.Address, body.ContactPhone)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	query, err := queries.NewGetDeliveryByOrderQuery(orderID)
	if err != nil {
		return internalError(ctx)
	}

	created, err := s.handlers.GetDeliveryByOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryCreated{
		Id:             created.ID.Bytes(),
		TrackingNumber: created.TrackingNumber,
	})
}

// SyncDeliveries handles POST /api/v1/deliveries/sync - runs the order
// backfill immediately instead of waiting for the scheduled pass.
func (s *Server) SyncDeliveries(ctx echo.Context) error {
	cmd := commands.NewSyncConfirmedOrdersCommand()

	if err := s.handlers.SyncOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active - lists
// non-terminal deliveries for the dispatcher board.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.handlers.GetActiveDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	response := make([]servers.Delivery, len(deliveries))
	for i, row := range deliveries {
		response[i] = servers.Delivery{
			Id:             row.ID.Bytes(),
			OrderId:        row.OrderID.Bytes(),
			TrackingNumber: row.TrackingNumber,
			Status:         servers.DeliveryStatus(row.Status),
			DriverName:     row.DriverName,
			CurrentLat:     row.CurrentLat,
			CurrentLon:     row.CurrentLon,
			Address:        row.Address,
			UpdatedAt:      row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDriver handles POST /api/v1/deliveries/{deliveryId}/assign -
// atomically pairs a driver with a delivery.
func (s *Server) AssignDriver(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var body servers.AssignRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	driverID, err := kernel.UUIDFromBytes(body.DriverId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAssignDriverCommand(driverID, deliveryID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseDelivery handles POST /api/v1/deliveries/{deliveryId}/close - closes
// a delivery as FAILED or CANCELLED from any non-terminal status.
func (s *Server) CloseDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var body servers.CloseRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	status, err := delivery.ParseStatus(string(body.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCloseDeliveryCommand(deliveryID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CloseDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionDelivery handles POST /api/v1/deliveries/{deliveryId}/transition -
// moves a delivery one step along its status graph.
func (s *Server) TransitionDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	status, err := delivery.ParseStatus(string(body.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewTransitionDeliveryCommand(deliveryID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.TransitionDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterDriver handles POST /api/v1/drivers - registers a new driver.
// The driver starts unverified and offline.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body servers.NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()

	cmd, err := commands.NewRegisterDriverCommand(driverID, body.Name, body.Phone, body.VehicleType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DriverRegistered{
		Id: driverID.Bytes(),
	})
}

// GetAvailableDrivers handles GET /api/v1/drivers/available - lists drivers
// eligible for dispatch.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	query := queries.NewGetAvailableDriversQuery()

	drivers, err := s.handlers.GetAvailableDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	response := make([]servers.Driver, len(drivers))
	for i, row := range drivers {
		response[i] = servers.Driver{
			Id:             row.ID.Bytes(),
			Name:           row.Name,
			VehicleType:    row.VehicleType,
			LastLat:        row.LastLat,
			LastLon:        row.LastLon,
			LastObservedAt: row.LastObservedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// FindNearestDriver handles GET /api/v1/drivers/nearest - finds the eligible
// driver closest to a destination.
func (s *Server) FindNearestDriver(ctx echo.Context, params servers.FindNearestDriverParams) error {
	query, err := queries.NewFindNearestDriverQuery(params.Lat, params.Lon)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	nearest, err := s.handlers.FindNearestDriver.Handle(ctx.Request().Context(), query)
	if errors.Is(err, services.ErrNoDriverAvailable) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, servers.NearestDriver{
		DriverId:       nearest.DriverID.Bytes(),
		Name:           nearest.Name,
		DistanceMeters: nearest.DistanceMeters,
	})
}

// CompleteDelivery handles POST /api/v1/drivers/{driverId}/complete - the
// driver reports handing the package over.
func (s *Server) CompleteDelivery(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IngestLocation handles POST /api/v1/drivers/{driverId}/location - ingests
// one GPS observation. A stale observation is dropped silently: the client
// already moved on, there is nothing useful to tell it.
func (s *Server) IngestLocation(ctx echo.Context, driverId openapi_types.UUID) error {
	var body servers.LocationUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewIngestLocationCommand(
		driverID,
		body.Latitude,
		body.Longitude,
		body.Speed,
		body.Heading,
		body.Accuracy,
		body.ObservedAt,
	)
	if err != nil {
		s.recordFix(metrics.FixRejected)
		return badRequest(ctx, err.Error())
	}

	err = s.handlers.IngestLocation.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, driver.ErrStaleFix) {
		s.recordFix(metrics.FixStale)
		return ctx.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return s.domainError(ctx, err)
	}

	s.recordFix(metrics.FixAccepted)

	return ctx.NoContent(http.StatusNoContent)
}

// DriverGoOffline handles POST /api/v1/drivers/{driverId}/offline.
// Fails with a conflict while the driver is engaged on a delivery.
func (s *Server) DriverGoOffline(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewGoOfflineCommand(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.GoOffline.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DriverGoOnline handles POST /api/v1/drivers/{driverId}/online.
func (s *Server) DriverGoOnline(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewGoOnlineCommand(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.GoOnline.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyDriver handles POST /api/v1/drivers/{driverId}/verify.
func (s *Server) VerifyDriver(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewVerifyDriverCommand(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.VerifyDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTracking handles GET /api/v1/tracking/{trackingNumber} - the public
// tracking view. Malformed numbers get the same 404 as unknown ones so the
// endpoint leaks nothing about which numbers exist.
func (s *Server) GetTracking(ctx echo.Context, trackingNumber string) error {
	number, err := kernel.ParseTrackingNumber(trackingNumber)
	if err != nil {
		return notFound(ctx, "Unknown tracking number")
	}

	query, err := queries.NewGetTrackingQuery(number)
	if err != nil {
		return notFound(ctx, "Unknown tracking number")
	}

	view, err := s.handlers.GetTracking.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound(ctx, "Unknown tracking number")
	}
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, servers.TrackingView{
		Status:      servers.DeliveryStatus(view.Status),
		CurrentLat:  view.CurrentLat,
		CurrentLon:  view.CurrentLon,
		Address:     view.Address,
		LastUpdated: view.LastUpdated,
	})
}

func (s *Server) recordFix(outcome string) {
	if s.sink != nil {
		s.sink.RecordFix(outcome)
	}
}

// domainError maps use case failures onto the HTTP surface.
func (s *Server) domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err.Error())
	case isConflict(err):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx)
	}
}

func isConflict(err error) bool {
	return errors.Is(err, commands.ErrAssignmentConflict) ||
		errors.Is(err, delivery.ErrDuplicateDelivery) ||
		errors.Is(err, delivery.ErrAlreadyAssigned) ||
		errors.Is(err, delivery.ErrDeliveryClosed) ||
		errors.Is(err, delivery.ErrInvalidTransition) ||
		errors.Is(err, driver.ErrDriverBusy) ||
		errors.Is(err, driver.ErrDriverNotAvailable) ||
		errors.Is(err, driver.ErrNoActiveDelivery)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
