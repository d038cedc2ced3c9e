package queries

import (
	"context"

	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRecentActivitiesQueryHandler struct {
	db *gorm.DB
}

func NewGetRecentActivitiesQueryHandler(db *gorm.DB) GetRecentActivitiesQueryHandler {
	return GetRecentActivitiesQueryHandler{db: db}
}

func (h GetRecentActivitiesQueryHandler) Handle(ctx context.Context, query GetRecentActivitiesQuery) ([]ActivityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.staff_id,
			concat_ws(' ', NULLIF(s.first_name, ''), NULLIF(s.last_name, '')),
			a.activity_type,
			a.order_id,
			a.customer_id,
			a.activity_time
		FROM activity_log a
		LEFT JOIN staff s ON s.id = a.staff_id
		ORDER BY a.activity_time DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]ActivityResponse, 0, query.Limit())
	for rows.Next() {
		var (
			id                  uuid.UUID
			staffID             int64
			kind                string
			orderID, customerID *int64
			resp                ActivityResponse
		)
		if err = rows.Scan(&id, &staffID, &resp.StaffName, &kind, &orderID, &customerID, &resp.At); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.StaffID = staff.ID(staffID)
		resp.Type = activity.Type(kind)
		if orderID != nil {
			oid := order.ID(*orderID)
			resp.OrderID = &oid
		}
		if customerID != nil {
			cid := customer.ID(*customerID)
			resp.CustomerID = &cid
		}
		resp.Description = activity.Describe(resp.Type, resp.OrderID, resp.CustomerID)
		activities = append(activities, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return activities, nil
}
