// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// NotificationRelayJob drains the notification outbox. Cancellation notices are
// written to the outbox in the same transaction as the status change; the relay
// publishes them to Kafka and marks them published. It runs every five seconds
// by default (OUTBOX_RELAY_SCHEDULE overrides the cron spec).
//
// # Usage
//
//	relay := jobs.NewNotificationRelayJob(relayHandler, cfg.OutboxRelaySchedule, 0, logger)
//	jobManager := jobs.NewJobManager(relay, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed relay run is logged and the batch stays in the outbox for the next
// run. Overlapping runs are skipped rather than queued. Failed job starts stop
// any already running jobs.
package jobs
