// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfillment service.
//
// # Available Jobs
//
// 1. FulfillmentJob - Runs every configured tick to auto-complete deliveries whose slot cutover has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeSlotHandler, location, tick, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The fulfillment job uses an "@every" cron expression derived from the
// configured tick interval. Each run observes the current time in the
// configured timezone, so the sweep decides calendar dates the same way the
// cutover configuration does.
//
// # Error Handling
//
//   - A failed sweep is logged and retried on the next tick; the sweep itself
//     is idempotent, so a retry picks up exactly the deliveries the previous
//     run failed to close
//   - Failures on individual deliveries are counted inside the sweep and do
//     not abort the remaining work
package jobs
