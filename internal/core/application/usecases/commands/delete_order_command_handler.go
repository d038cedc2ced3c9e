package commands

import (
	"context"
	"time"
)

// DeleteOrderCommandHandler removes an order. Cancelled orders are protected
// and fail with errs.ErrObjectIsProtected for every caller, admins included.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle deletes the order together with its service line and payments.
// A concurrent change to the same order fails with errs.ErrVersionIsInvalid.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Delete(h.now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
