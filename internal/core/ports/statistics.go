package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// OrderStatistics is the dashboard snapshot.
type OrderStatistics struct {
	GeneratedAt time.Time

	// CompletedToday counts Completed orders delivered on the day of GeneratedAt.
	CompletedToday int
	// PendingIssues counts orders that are neither Completed nor Cancelled.
	PendingIssues   int
	PendingDelivery int
	PendingPickup   int

	TotalOrders     int
	CompletedOrders int
	CancelledOrders int

	// Revenue and AverageOrderValue are computed over Completed orders.
	Revenue           kernel.Money
	AverageOrderValue kernel.Money
}

// StatisticsReader computes a fresh snapshot from storage.
type StatisticsReader interface {
	Compute(ctx context.Context, now time.Time) (OrderStatistics, error)
}

// StatisticsCache keeps the latest snapshot between refreshes. Get returns
// errs.ErrObjectNotFound when nothing is cached or the entry expired.
type StatisticsCache interface {
	Get(ctx context.Context) (OrderStatistics, error)
	Set(ctx context.Context, stats OrderStatistics) error
}
