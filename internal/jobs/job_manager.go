package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderSyncJob *OrderSyncJob
	dispatchJob  *DispatchJob
}

// NewJobManager creates a new job manager over the given jobs.
func NewJobManager(orderSyncJob *OrderSyncJob, dispatchJob *DispatchJob) *JobManager {
	return &JobManager{
		orderSyncJob: orderSyncJob,
		dispatchJob:  dispatchJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start order sync job: %w", err)
	}

	if err := jm.dispatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderSyncJob.Stop()
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchJob.Stop()
	jm.orderSyncJob.Stop()
}
