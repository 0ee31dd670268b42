package jobs

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderBacklogJob periodically logs how many orders sit in each status.
type OrderBacklogJob struct {
	handler  queries.GetOrderBacklogQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob creates a job that fires on schedule, a six-field cron
// spec with seconds.
func NewOrderBacklogJob(handler queries.GetOrderBacklogQueryHandler, schedule string, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Run executes one backlog report.
func (j *OrderBacklogJob) Run(ctx context.Context) error {
	backlog, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		return err
	}

	attrs := make([]any, 0, 2*len(backlog.Counts)+4)
	attrs = append(attrs, "total", backlog.Total, "open", backlog.Open())
	for status, count := range backlog.Counts {
		attrs = append(attrs, status.String(), count)
	}
	j.logger.InfoContext(ctx, "Order backlog", attrs...)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
