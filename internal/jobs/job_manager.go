package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderBacklogJob *OrderBacklogJob
	logger          *slog.Logger
	started         bool
}

// NewJobManager wires the jobs. An empty backlogSchedule disables the order
// backlog job.
func NewJobManager(
	backlogHandler queries.GetOrderBacklogQueryHandler,
	backlogSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger}
	if backlogSchedule != "" {
		jm.orderBacklogJob = NewOrderBacklogJob(backlogHandler, backlogSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.orderBacklogJob == nil {
		jm.logger.InfoContext(context.Background(), "Order backlog job disabled")
		return nil
	}

	if err := jm.orderBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}
	jm.started = true

	return nil
}

// StopAll stops every job that was started.
func (jm *JobManager) StopAll() {
	if jm.started {
		jm.orderBacklogJob.Stop()
		jm.started = false
	}
}
