// Package jobs provides scheduled background tasks for the subscription shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the checkout needs.
//
// # Available Jobs
//
// 1. DraftExpiryJob - Runs every minute to prune checkout drafts whose session
// has been idle longer than the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(draftRegistry, draftTTL, logger)
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
// Drafts currently locked by a running command are skipped and picked up on
// the next sweep, so pruning never races an in-flight step submission.
package jobs
