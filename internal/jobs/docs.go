// Package jobs provides scheduled background tasks for the order tracking
// service, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CsatReminderJob - Runs every minute to re-send the feedback link for
// completed orders whose customers never submitted a rating. Each order is
// reminded at most once; a persisted flag guards against double sends.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(remindCsatHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
