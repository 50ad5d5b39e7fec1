package jobs

import (
	"fmt"
	"log/slog"

	"senderplus/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryReportJob *DeliveryReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statusCountsHandler queries.GetParcelStatusCountsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryReportJob: NewDeliveryReportJob(statusCountsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryReportJob.Stop()
}
