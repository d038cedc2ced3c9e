package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/activity"
)

// PickUpOrderCommandHandler moves a Pending order to Processing. The picking
// staff member becomes the order's staff reference and PICKUP_ORDER is logged.
type PickUpOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewPickUpOrderCommandHandler creates a handler for order pickup.
// Requires a UoWFactory for transactional persistence.
func NewPickUpOrderCommandHandler(uowFactory UoWFactory) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the pickup command.
func (h PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
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

	now := h.now().UTC()
	if err = o.PickUp(member.ID(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = recordActivity(ctx, uow, member, activity.PickUpOrder, o.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
