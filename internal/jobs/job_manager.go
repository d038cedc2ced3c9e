package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dashboardRefreshJob *DashboardRefreshJob
}

// NewJobManager wires the jobs to their use cases. refreshSpec may be empty.
func NewJobManager(refreshDashboardHandler RefreshDashboardHandler, refreshSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		dashboardRefreshJob: NewDashboardRefreshJob(refreshDashboardHandler, refreshSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardRefreshJob.Stop()
}
