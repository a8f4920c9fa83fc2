// Package jobs runs the marketplace's scheduled background work on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. UnpaidOrderExpiryJob - cancels orders that stayed in pending_payment
// longer than the configured TTL and puts their listings back on sale
//
// # Usage
//
//	expiry, err := jobs.NewUnpaidOrderExpiryJob(handler, jobs.ExpiryConfig{
//		Schedule: "@every 1m",
//		TTL:      30 * time.Minute,
//	}, metrics, logger)
//	if err != nil {
//		return err
//	}
//
//	jobManager := jobs.NewJobManager(expiry)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five field cron syntax plus descriptors such as
// "@every 1m" and "@hourly". Runs never overlap: a tick that fires while the
// previous run is still going is skipped.
//
// # Error Handling
//
// A failed run is logged and counted, and the next tick tries again. Orders
// are cancelled in batches, each in its own transaction, so a failure only
// rolls back the batch it happened in.
package jobs
