// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the engine needs.
//
// # Available Jobs
//
// 1. OrderSyncJob - backfills deliveries for confirmed orders that are missing one
// 2. DispatchJob - pairs the oldest waiting delivery with the nearest eligible driver
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderSyncJob, dispatchJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take a six-field cron expression (seconds column included).
// The dispatch job defaults to every second so waiting deliveries are picked
// up with sub-second perceived latency; the order sync job defaults to every
// five seconds since the backfill is idempotent and the source table changes
// slowly.
//
// # Error Handling
//
//   - The dispatch job treats an empty pending set, an empty eligible driver
//     set and a lost assignment race as normal outcomes; only unexpected
//     failures are logged.
//   - The order sync job logs every error, its command should never fail in
//     a healthy system.
//   - A job that fails to start stops any already running jobs.
package jobs
