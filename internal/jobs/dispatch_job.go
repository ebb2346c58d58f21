package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DispatchJob automatically pairs waiting deliveries with drivers. Each tick
// it takes the oldest unassigned delivery, finds the eligible driver nearest
// to the depot and tries to assign it. A lost assignment race is retried on
// the next tick; an empty eligible set is not an error.
type DispatchJob struct {
	uowFactory  ports.UnitOfWorkFactory
	findNearest queries.FindNearestDriverQueryHandler
	assign      commands.AssignDriverCommandHandler
	depot       kernel.GeoPoint
	schedule    string
	cron        *cron.Cron
	logger      *slog.Logger
	sink        *metrics.PromSink
}

// NewDispatchJob creates a new job for automatic assignment. Pickups start
// at the depot, so driver proximity is measured against it. The metrics
// sink may be nil.
func NewDispatchJob(
	uowFactory ports.UnitOfWorkFactory,
	findNearest queries.FindNearestDriverQueryHandler,
	assign commands.AssignDriverCommandHandler,
	depot kernel.GeoPoint,
	schedule string,
	logger *slog.Logger,
	sink *metrics.PromSink,
) *DispatchJob {
	return &DispatchJob{
		uowFactory:  uowFactory,
		findNearest: findNearest,
		assign:      assign,
		depot:       depot,
		schedule:    schedule,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "dispatch_job"),
		sink:        sink,
	}
}

// Start begins the scheduled assignment pass.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.tick(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}

func (j *DispatchJob) tick(ctx context.Context) {
	// Read outside any transaction; the assignment command takes its own
	// locks and is the single authority on the final pairing.
	uow := j.uowFactory.Create()

	pending, err := uow.DeliveryRepository().GetAllUnassigned(ctx)
	if err != nil {
		j.record(metrics.DispatchError)
		j.logger.ErrorContext(ctx, "Dispatch job failed to load pending deliveries", "error", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	target := pending[0]

	query, err := queries.NewFindNearestDriverQuery(j.depot.Latitude(), j.depot.Longitude())
	if err != nil {
		j.record(metrics.DispatchError)
		j.logger.ErrorContext(ctx, "Dispatch job failed to build nearest-driver query", "error", err)
		return
	}

	nearest, err := j.findNearest.Handle(ctx, query)
	if errors.Is(err, services.ErrNoDriverAvailable) {
		j.record(metrics.DispatchNoDriver)
		return
	}
	if err != nil {
		j.record(metrics.DispatchError)
		j.logger.ErrorContext(ctx, "Dispatch job failed to find a driver", "error", err)
		return
	}

	cmd, err := commands.NewAssignDriverCommand(nearest.DriverID, target.ID())
	if err != nil {
		j.record(metrics.DispatchError)
		j.logger.ErrorContext(ctx, "Dispatch job failed to build assignment command", "error", err)
		return
	}

	err = j.assign.Handle(ctx, cmd)
	if errors.Is(err, commands.ErrAssignmentConflict) {
		// lost the race, next tick sees the updated eligible set
		j.record(metrics.DispatchConflict)
		return
	}
	if err != nil {
		j.record(metrics.DispatchError)
		j.logger.ErrorContext(ctx, "Dispatch job failed to assign",
			"delivery_id", target.ID().String(),
			"driver_id", nearest.DriverID.String(),
			"error", err)
		return
	}

	j.record(metrics.DispatchAssigned)
	j.logger.InfoContext(ctx, "Dispatch job assigned delivery",
		"delivery_id", target.ID().String(),
		"driver_id", nearest.DriverID.String(),
		"distance_meters", nearest.DistanceMeters)
}

func (j *DispatchJob) record(outcome string) {
	if j.sink != nil {
		j.sink.RecordDispatch(outcome)
	}
}
