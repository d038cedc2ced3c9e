package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
)

var ErrGetRecentActivitiesQueryIsNotConstructed = errors.New(
	"GetRecentActivitiesQuery must be created via NewGetRecentActivitiesQuery constructor",
)

// GetRecentActivitiesQuery reads the newest entries of the staff activity log.
type GetRecentActivitiesQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentActivitiesQuery uses DefaultActivityLimit when limit is 0.
func NewGetRecentActivitiesQuery(limit int) (GetRecentActivitiesQuery, error) {
	if limit == 0 {
		limit = DefaultActivityLimit
	}
	if limit < 1 || limit > MaxActivityLimit {
		return GetRecentActivitiesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxActivityLimit)
	}
	return GetRecentActivitiesQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecentActivitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentActivitiesQueryIsNotConstructed)
}

func (q GetRecentActivitiesQuery) Limit() int {
	return q.limit
}

// ActivityResponse is one line of the activity feed.
type ActivityResponse struct {
	ID          kernel.UUID
	StaffID     staff.ID
	StaffName   string
	Type        activity.Type
	OrderID     *order.ID
	CustomerID  *customer.ID
	Description string
	At          time.Time
}
