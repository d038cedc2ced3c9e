package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/activity"
)

// DeliverOrderCommandHandler records the delivery of a Processing order and
// logs DELIVER_ORDER. The status stays Processing until payment is finalized.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewDeliverOrderCommandHandler creates a handler for delivery confirmation.
func NewDeliverOrderCommandHandler(uowFactory UoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle stamps the delivery time and touches the staff member's last-active
// time.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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
	if err = o.Deliver(now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = recordActivity(ctx, uow, member, activity.DeliverOrder, o.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
