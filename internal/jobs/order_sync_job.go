package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderSyncJob periodically backfills deliveries for confirmed orders that
// do not have one yet. The underlying command is idempotent, so overlapping
// runs and restarts are harmless.
type OrderSyncJob struct {
	handler  commands.SyncConfirmedOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderSyncJob creates a new job for the order backfill.
// The schedule is a six-field cron expression with a seconds column.
func NewOrderSyncJob(
	handler commands.SyncConfirmedOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderSyncJob {
	return &OrderSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_sync_job"),
	}
}

// Start begins the scheduled backfill.
func (j *OrderSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncConfirmedOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order sync job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order sync job.
func (j *OrderSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sync job stopped")
}
