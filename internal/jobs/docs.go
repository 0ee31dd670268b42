// Package jobs provides scheduled background tasks for the order service.
//
// Jobs use github.com/robfig/cron/v3 with seconds-precision specs.
//
// # Available Jobs
//
// OrderBacklogJob logs the number of orders per status, every 30 seconds by
// default (ORDER_BACKLOG_SCHEDULE). An empty schedule disables it.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(backlogHandler, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
