// Package jobs provides scheduled background tasks for the kitchen service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. DailyReportJob - Runs shortly after midnight to build the previous day's
// report and publish it on the "reports" topic for the kitchen displays
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(logger, dailyReportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the schedule continues; the next run is not
// affected. Failed job starts will stop any already running jobs.
package jobs
