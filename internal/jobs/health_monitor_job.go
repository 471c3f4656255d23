package jobs

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// HealthMonitorJob periodically probes the external order status API and logs
// health flips. Reconciliation itself fails open on an unhealthy authority,
// so this job exists purely for operator visibility.
type HealthMonitorJob struct {
	reconciler ports.StatusReconciler
	cron       *cron.Cron
	logger     *slog.Logger

	lastHealthy bool
	probed      bool
}

// NewHealthMonitorJob creates a job that probes the status authority every
// 30 seconds.
func NewHealthMonitorJob(reconciler ports.StatusReconciler, logger *slog.Logger) *HealthMonitorJob {
	return &HealthMonitorJob{
		reconciler: reconciler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "health_monitor_job"),
	}
}

// Start begins probing every 30 seconds.
func (j *HealthMonitorJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		healthy := j.reconciler.Healthy(ctx)

		if !j.probed || healthy != j.lastHealthy {
			if healthy {
				j.logger.InfoContext(ctx, "External order status API is healthy")
			} else {
				j.logger.WarnContext(ctx, "External order status API is down, reconciliation will be skipped")
			}
		}

		j.probed = true
		j.lastHealthy = healthy
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Health monitor job started (probing every 30 seconds)")
	return nil
}

// Stop stops the health monitor job.
func (j *HealthMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Health monitor job stopped")
}
