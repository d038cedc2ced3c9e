package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDashboardRefreshSpec runs the refresh every ten seconds.
const DefaultDashboardRefreshSpec = "*/10 * * * * *"

// RefreshDashboardHandler is the use case run on every tick.
type RefreshDashboardHandler interface {
	Handle(ctx context.Context, cmd commands.RefreshDashboardCommand) error
}

// DashboardRefreshJob recomputes the dashboard statistics on a schedule so
// reads are served from the cached snapshot.
type DashboardRefreshJob struct {
	handler RefreshDashboardHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDashboardRefreshJob uses DefaultDashboardRefreshSpec when spec is empty.
// The spec has a leading seconds field.
func NewDashboardRefreshJob(handler RefreshDashboardHandler, spec string, logger *slog.Logger) *DashboardRefreshJob {
	if spec == "" {
		spec = DefaultDashboardRefreshSpec
	}
	return &DashboardRefreshJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "dashboard_refresh_job"),
	}
}

// Start schedules the job. An invalid spec is returned as an error.
func (j *DashboardRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard refresh job started", "spec", j.spec)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *DashboardRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dashboard refresh job stopped")
}

func (j *DashboardRefreshJob) run() {
	ctx := context.Background()
	if err := j.handler.Handle(ctx, commands.NewRefreshDashboardCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Dashboard refresh job failed", "error", err)
	}
}
