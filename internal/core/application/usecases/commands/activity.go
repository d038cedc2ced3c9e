package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
)

// recordActivity appends the activity log entry for a staff action and
// refreshes the member's last-active time, inside the caller's unit of work.
func recordActivity(ctx context.Context, uow UoW, member *staff.Staff, kind activity.Type, orderID order.ID, at time.Time) error {
	entry, err := activity.NewEntry(member.ID(), kind, orderID, at)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return err
	}

	member.Touch(at)
	return uow.StaffRepository().Update(ctx, member)
}
