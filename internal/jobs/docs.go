// Package jobs provides scheduled background tasks for the laundry service.
//
// Jobs are cron-based and built on github.com/robfig/cron/v3 with a leading
// seconds field in every spec.
//
// # Available Jobs
//
// DashboardRefreshJob recomputes the order statistics and replaces the cached
// snapshot served by the dashboard. It runs every ten seconds unless
// DASHBOARD_REFRESH_SPEC says otherwise. A tick that is still running when the
// next one fires causes that next tick to be skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshDashboardHandler, "", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot stays in the cache
// until its TTL expires. Reads then fall back to computing the statistics.
package jobs
