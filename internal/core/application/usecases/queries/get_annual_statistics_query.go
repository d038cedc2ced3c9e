package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	MinReportYear = 2000
	MaxReportYear = 9999
)

var ErrGetAnnualStatisticsQueryIsNotConstructed = errors.New(
	"GetAnnualStatisticsQuery must be created via NewGetAnnualStatisticsQuery constructor",
)

// GetAnnualStatisticsQuery summarizes one calendar year of orders.
type GetAnnualStatisticsQuery struct {
	year int

	guard guard.ConstructorGuard
}

func NewGetAnnualStatisticsQuery(year int) (GetAnnualStatisticsQuery, error) {
	if year < MinReportYear || year > MaxReportYear {
		return GetAnnualStatisticsQuery{}, errs.NewValueIsOutOfRangeError("year", year, MinReportYear, MaxReportYear)
	}
	return GetAnnualStatisticsQuery{year: year, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAnnualStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAnnualStatisticsQueryIsNotConstructed)
}

func (q GetAnnualStatisticsQuery) Year() int {
	return q.year
}

// AnnualStatistics counts the orders created during Year. Revenue, weight and
// the average order value cover Completed orders only.
type AnnualStatistics struct {
	Year int

	TotalOrders int
	Completed   int
	Pending     int
	Processing  int
	Cancelled   int
	// CompletionRate is Completed as a percentage of TotalOrders, 0 without orders.
	CompletionRate float64

	Revenue                   kernel.Money
	AverageOrderValue         kernel.Money
	WeightProcessedHundredths int64

	// BusiestStaff is nil when no order was created during the year.
	BusiestStaff *StaffWorkload
	NewCustomers int
}

// StaffWorkload is the number of orders a staff member is referenced by.
type StaffWorkload struct {
	StaffID staff.ID
	Name    string
	Orders  int
}
