package commands

import (
	"context"
	"time"

	"laundry/internal/core/ports"
)

// RefreshDashboardCommandHandler computes fresh statistics from storage and
// replaces the cached snapshot read by the dashboard.
type RefreshDashboardCommandHandler struct {
	reader ports.StatisticsReader
	cache  ports.StatisticsCache
	now    func() time.Time
}

// NewRefreshDashboardCommandHandler wires the statistics reader to the cache
// the dashboard reads from.
func NewRefreshDashboardCommandHandler(reader ports.StatisticsReader, cache ports.StatisticsCache) RefreshDashboardCommandHandler {
	return RefreshDashboardCommandHandler{
		reader: reader,
		cache:  cache,
		now:    time.Now,
	}
}

// Handle reads the statistics for the current day and stores them in the
// cache. A cache failure is returned; the previous snapshot stays until it
// expires.
func (h RefreshDashboardCommandHandler) Handle(ctx context.Context, cmd RefreshDashboardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	stats, err := h.reader.Compute(ctx, h.now())
	if err != nil {
		return err
	}

	return h.cache.Set(ctx, stats)
}
