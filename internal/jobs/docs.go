// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order book monitoring.
//
// # Available Jobs
//
// 1. OrderReportJob - Runs every minute to log order counts and combined price totals
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAllOrdersHandler, logger)
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
// The report job uses the cron expression "0 * * * * *", firing at the top of
// every minute. Reports read from the SQL read model, so they stay cheap even
// with large order books.
//
// # Error Handling
//
// - Report job logs query failures and skips the cycle
// - Failed job starts surface as errors from StartAll
package jobs
