package ports

import (
	"context"

	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/staff"
)

// CustomerRepository reads customers owned by the customer management screens.
type CustomerRepository interface {
	Get(ctx context.Context, id customer.ID) (*customer.Customer, error)
}

// StaffRepository reads staff members and refreshes their last-active time.
type StaffRepository interface {
	Get(ctx context.Context, id staff.ID) (*staff.Staff, error)

	// Update persists LastActiveAt; other staff fields are not owned by the engine.
	Update(ctx context.Context, member *staff.Staff) error
}

// ActivityRepository appends to the staff activity log.
type ActivityRepository interface {
	Add(ctx context.Context, entry *activity.Entry) error
}
