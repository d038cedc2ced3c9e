package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates orders. The customer and the creating staff
// member must exist; the new order is Pending and the creation is logged as
// CREATE_ORDER against the staff member.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(customerID, staffID, 3.5, 2, pricing.AddOns{FastDry: true, Fold: true})
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("create order: %w", err)
//	}
//	// id.Code() is "WSHY#001" for the first order, total 1890.00
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// Requires a UoWFactory whose unit of work exposes the order, customer,
// staff and activity repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle prices the service line, stores the order and logs the creation in
// one transaction. It returns the storage-assigned order ID. An unknown
// customer or staff member fails with errs.ErrObjectNotFound.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}
	member, err := uow.StaffRepository().Get(ctx, cmd.StaffID())
	if err != nil {
		return 0, err
	}

	service, err := order.NewService(cmd.Weight(), cmd.Quantity(), cmd.AddOns())
	if err != nil {
		return 0, err
	}

	now := h.now().UTC()
	o, err := order.NewOrder(c.ID(), member.ID(), service, now)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = recordActivity(ctx, uow, member, activity.CreateOrder, o.ID(), now); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
