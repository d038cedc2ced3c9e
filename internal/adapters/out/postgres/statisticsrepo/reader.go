// Package statisticsrepo computes the dashboard snapshot straight from the
// orders table in a single aggregate query.
package statisticsrepo

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

const statisticsQuery = `
SELECT
	COUNT(*)                                                             AS total_orders,
	COUNT(*) FILTER (WHERE status = @completed)                          AS completed_orders,
	COUNT(*) FILTER (WHERE status = @cancelled)                          AS cancelled_orders,
	COUNT(*) FILTER (WHERE status = @completed
		AND delivered_at >= @day_start AND delivered_at < @day_end)      AS completed_today,
	COUNT(*) FILTER (WHERE status NOT IN (@completed, @cancelled))       AS pending_issues,
	COUNT(*) FILTER (WHERE status = @processing)                         AS pending_delivery,
	COUNT(*) FILTER (WHERE status = @pending)                            AS pending_pickup,
	COALESCE(SUM(total_cents) FILTER (WHERE status = @completed), 0)     AS revenue_cents
FROM orders`

type statisticsRow struct {
	TotalOrders     int
	CompletedOrders int
	CancelledOrders int
	CompletedToday  int
	PendingIssues   int
	PendingDelivery int
	PendingPickup   int
	RevenueCents    int64
}

// GormStatisticsReader implements ports.StatisticsReader.
type GormStatisticsReader struct {
	db *gorm.DB
}

func NewGormStatisticsReader(db *gorm.DB) *GormStatisticsReader {
	return &GormStatisticsReader{db: db}
}

// Compute counts orders by status. "Today" is the calendar day of now in
// now's location.
func (r *GormStatisticsReader) Compute(ctx context.Context, now time.Time) (ports.OrderStatistics, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var row statisticsRow
	err := r.db.WithContext(ctx).Raw(statisticsQuery, map[string]any{
		"pending":    order.Pending.String(),
		"processing": order.Processing.String(),
		"completed":  order.Completed.String(),
		"cancelled":  order.Cancelled.String(),
		"day_start":  dayStart,
		"day_end":    dayStart.AddDate(0, 0, 1),
	}).Scan(&row).Error
	if err != nil {
		return ports.OrderStatistics{}, errs.NewPersistenceError("compute statistics", err)
	}

	revenue, err := kernel.NewMoney(row.RevenueCents)
	if err != nil {
		return ports.OrderStatistics{}, err
	}
	average := kernel.Zero
	if row.CompletedOrders > 0 {
		if average, err = kernel.NewMoney(row.RevenueCents / int64(row.CompletedOrders)); err != nil {
			return ports.OrderStatistics{}, err
		}
	}

	return ports.OrderStatistics{
		GeneratedAt:       now,
		CompletedToday:    row.CompletedToday,
		PendingIssues:     row.PendingIssues,
		PendingDelivery:   row.PendingDelivery,
		PendingPickup:     row.PendingPickup,
		TotalOrders:       row.TotalOrders,
		CompletedOrders:   row.CompletedOrders,
		CancelledOrders:   row.CancelledOrders,
		Revenue:           revenue,
		AverageOrderValue: average,
	}, nil
}
