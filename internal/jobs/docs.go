// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic reporting for the donation service.
//
// # Available Jobs
//
// 1. ImpactSnapshotJob - Runs every minute to log the public impact counters
// 2. ExpiryAuditJob - Runs hourly to log available donations whose expiry date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(impactStatsHandler, listDonationsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are read-only reporting tasks: they never mutate donations or
// orders, and every failure is logged rather than retried. Failed job starts
// will stop any already running jobs.
package jobs
