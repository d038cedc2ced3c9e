package queries

import (
	"context"
	"math"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

const annualOrdersQuery = `
SELECT
	COUNT(*)                                                                  AS total_orders,
	COUNT(*) FILTER (WHERE o.status = @completed)                             AS completed,
	COUNT(*) FILTER (WHERE o.status = @pending)                               AS pending,
	COUNT(*) FILTER (WHERE o.status = @processing)                            AS processing,
	COUNT(*) FILTER (WHERE o.status = @cancelled)                             AS cancelled,
	COALESCE(SUM(o.total_cents) FILTER (WHERE o.status = @completed), 0)      AS revenue_cents,
	COALESCE(SUM(s.weight_hundredths) FILTER (WHERE o.status = @completed), 0) AS weight_hundredths
FROM orders o
LEFT JOIN order_services s ON s.order_id = o.id
WHERE o.created_at >= @year_start AND o.created_at < @year_end`

// Ties go to the lower staff ID.
const busiestStaffQuery = `
SELECT
	st.id                                                               AS staff_id,
	concat_ws(' ', NULLIF(st.first_name, ''), NULLIF(st.last_name, '')) AS name,
	COUNT(*)                                                            AS order_count
FROM orders o
JOIN staff st ON st.id = o.staff_id
WHERE o.created_at >= @year_start AND o.created_at < @year_end
GROUP BY st.id, st.first_name, st.last_name
ORDER BY order_count DESC, st.id
LIMIT 1`

type annualOrdersRow struct {
	TotalOrders      int
	Completed        int
	Pending          int
	Processing       int
	Cancelled        int
	RevenueCents     int64
	WeightHundredths int64
}

type staffWorkloadRow struct {
	StaffID    int64
	Name       string
	OrderCount int
}

// GetAnnualStatisticsQueryHandler computes the yearly report straight from
// storage. Years are calendar years in the handler's location.
type GetAnnualStatisticsQueryHandler struct {
	db       *gorm.DB
	location *time.Location
}

func NewGetAnnualStatisticsQueryHandler(db *gorm.DB, location *time.Location) GetAnnualStatisticsQueryHandler {
	if location == nil {
		location = time.Local
	}
	return GetAnnualStatisticsQueryHandler{db: db, location: location}
}

func (h GetAnnualStatisticsQueryHandler) Handle(ctx context.Context, query GetAnnualStatisticsQuery) (AnnualStatistics, error) {
	if err := query.Validate(); err != nil {
		return AnnualStatistics{}, err
	}

	yearStart := time.Date(query.Year(), time.January, 1, 0, 0, 0, 0, h.location)
	args := map[string]any{
		"pending":    order.Pending.String(),
		"processing": order.Processing.String(),
		"completed":  order.Completed.String(),
		"cancelled":  order.Cancelled.String(),
		"year_start": yearStart,
		"year_end":   yearStart.AddDate(1, 0, 0),
	}
	db := h.db.WithContext(ctx)

	var totals annualOrdersRow
	if err := db.Raw(annualOrdersQuery, args).Scan(&totals).Error; err != nil {
		return AnnualStatistics{}, errs.NewPersistenceError("compute annual orders", err)
	}

	var busiest []staffWorkloadRow
	if err := db.Raw(busiestStaffQuery, args).Scan(&busiest).Error; err != nil {
		return AnnualStatistics{}, errs.NewPersistenceError("compute busiest staff", err)
	}

	var newCustomers int64
	err := db.Table("customers").
		Where("created_at >= ? AND created_at < ?", args["year_start"], args["year_end"]).
		Count(&newCustomers).Error
	if err != nil {
		return AnnualStatistics{}, errs.NewPersistenceError("count new customers", err)
	}

	revenue, err := kernel.NewMoney(totals.RevenueCents)
	if err != nil {
		return AnnualStatistics{}, err
	}
	average := kernel.Zero
	if totals.Completed > 0 {
		if average, err = kernel.NewMoney(totals.RevenueCents / int64(totals.Completed)); err != nil {
			return AnnualStatistics{}, err
		}
	}

	stats := AnnualStatistics{
		Year:                      query.Year(),
		TotalOrders:               totals.TotalOrders,
		Completed:                 totals.Completed,
		Pending:                   totals.Pending,
		Processing:                totals.Processing,
		Cancelled:                 totals.Cancelled,
		CompletionRate:            completionRate(totals.Completed, totals.TotalOrders),
		Revenue:                   revenue,
		AverageOrderValue:         average,
		WeightProcessedHundredths: totals.WeightHundredths,
		NewCustomers:              int(newCustomers),
	}
	if len(busiest) > 0 {
		stats.BusiestStaff = &StaffWorkload{
			StaffID: staff.ID(busiest[0].StaffID),
			Name:    busiest[0].Name,
			Orders:  busiest[0].OrderCount,
		}
	}
	return stats, nil
}

// completionRate is rounded to two decimals.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)*10000/float64(total)) / 100
}
