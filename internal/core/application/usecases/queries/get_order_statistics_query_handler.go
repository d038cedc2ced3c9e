package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// GetOrderStatisticsQueryHandler serves the cached snapshot. On a miss it
// computes one, returns it and stores it for the next caller. A broken cache
// never fails the query.
type GetOrderStatisticsQueryHandler struct {
	reader ports.StatisticsReader
	cache  ports.StatisticsCache
	logger *slog.Logger
	now    func() time.Time
}

func NewGetOrderStatisticsQueryHandler(
	reader ports.StatisticsReader,
	cache ports.StatisticsCache,
	logger *slog.Logger,
) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{
		reader: reader,
		cache:  cache,
		logger: logger.With("component", "order_statistics"),
		now:    time.Now,
	}
}

func (h GetOrderStatisticsQueryHandler) Handle(ctx context.Context, query GetOrderStatisticsQuery) (ports.OrderStatistics, error) {
	if err := query.Validate(); err != nil {
		return ports.OrderStatistics{}, err
	}

	cached, err := h.cache.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "statistics cache read failed", "error", err)
	}

	stats, err := h.reader.Compute(ctx, h.now())
	if err != nil {
		return ports.OrderStatistics{}, err
	}

	if err = h.cache.Set(ctx, stats); err != nil {
		h.logger.WarnContext(ctx, "statistics cache write failed", "error", err)
	}
	return stats, nil
}
