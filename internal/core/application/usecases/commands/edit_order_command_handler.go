package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/order"
)

// EditOrderCommandHandler reprices a Pending order and logs EDIT_ORDER.
// Orders past Pending fail with errs.ErrInvalidTransition and keep their
// service line and total.
type EditOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(uowFactory UoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle replaces the service line with a freshly priced one.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	member, err := uow.StaffRepository().Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}

	service, err := order.NewService(cmd.Weight(), cmd.Quantity(), cmd.AddOns())
	if err != nil {
		return err
	}

	now := h.now().UTC()
	if err = o.Edit(service, now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = recordActivity(ctx, uow, member, activity.EditOrder, o.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
