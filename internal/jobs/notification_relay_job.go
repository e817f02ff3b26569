package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultRelaySchedule runs the relay every five seconds.
	DefaultRelaySchedule = "*/5 * * * * *"
	// DefaultRelayBatchSize caps how many outbox rows one run publishes.
	DefaultRelayBatchSize = 100

	relayTimeout = 30 * time.Second
)

// NotificationRelayer publishes pending outbox notifications.
// commands.RelayNotificationsCommandHandler implements it.
type NotificationRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayNotificationsCommand) (int, error)
}

// NotificationRelayJob drains the notification outbox on a cron schedule.
// A run that is still publishing when the next one is due makes that next run skip.
type NotificationRelayJob struct {
	handler   NotificationRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRelayJob creates the relay job. An empty schedule falls back to
// DefaultRelaySchedule and a non-positive batch size to DefaultRelayBatchSize.
func NewNotificationRelayJob(
	handler NotificationRelayer,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *NotificationRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	if batchSize <= 0 {
		batchSize = DefaultRelayBatchSize
	}
	return &NotificationRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "notification_relay_job"),
	}
}

// Start schedules the relay and starts the cron runner.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Notification relay job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Run publishes one batch. Failures are logged and retried on the next tick;
// they never reach the order transactions that wrote the outbox rows.
func (j *NotificationRelayJob) Run(ctx context.Context) {
	cmd, err := commands.NewRelayNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay job failed", "error", err)
		return
	}
	if published > 0 {
		j.logger.InfoContext(ctx, "Notifications published", "count", published)
	}
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *NotificationRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Notification relay job stopped")
}
