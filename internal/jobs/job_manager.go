package jobs

import (
	"fmt"
	"log/slog"

	"ordertrack/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	healthMonitorJob *HealthMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(reconciler ports.StatusReconciler, logger *slog.Logger) *JobManager {
	return &JobManager{
		healthMonitorJob: NewHealthMonitorJob(reconciler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.healthMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start health monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.healthMonitorJob.Stop()
}
