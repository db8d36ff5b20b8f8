// Package jobs provides scheduled background tasks for the fuel dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. DeliveryDispatchJob - Runs every minute to dispatch planned deliveries whose departure time has arrived
// 2. CertificationSweepJob - Runs hourly to report vehicles with expired DOT certification
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(dispatchHandler, vehicleRepo, logger)
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
// The dispatch job uses the cron expression "0 * * * * *" (every minute); the
// certification sweep uses "0 0 * * * *" (every hour). Departure times carry
// minute precision, so a tighter dispatch cadence buys nothing.
//
// # Error Handling
//
// - The dispatch job logs sweep failures; skipped deliveries stay planned and are retried next minute
// - The certification sweep only reads state, so its failures are logged and never block dispatching
// - Failed job starts will stop any already running jobs
package jobs
