package commands

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var (
	ErrPickUpOrderCommandIsNotConstructed = errors.New(
		"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
	)
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
)

// staffOrderAction is the payload shared by actions a staff member performs
// on a single order.
type staffOrderAction struct {
	orderID order.ID
	staffID staff.ID
}

func newStaffOrderAction(orderID order.ID, staffID staff.ID) (staffOrderAction, error) {
	if err := errors.Join(orderID.Validate(), staffID.Validate()); err != nil {
		return staffOrderAction{}, err
	}
	return staffOrderAction{orderID: orderID, staffID: staffID}, nil
}

// PickUpOrderCommand marks a Pending order as collected by a staff member.
type PickUpOrderCommand struct {
	staffOrderAction
	guard guard.ConstructorGuard
}

func NewPickUpOrderCommand(orderID order.ID, staffID staff.ID) (PickUpOrderCommand, error) {
	action, err := newStaffOrderAction(orderID, staffID)
	if err != nil {
		return PickUpOrderCommand{}, err
	}
	return PickUpOrderCommand{staffOrderAction: action, guard: guard.NewConstructorGuard()}, nil
}

func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

func (c PickUpOrderCommand) OrderID() order.ID { return c.orderID }
func (c PickUpOrderCommand) StaffID() staff.ID { return c.staffID }

// DeliverOrderCommand stamps the delivery time of a Processing order.
type DeliverOrderCommand struct {
	staffOrderAction
	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(orderID order.ID, staffID staff.ID) (DeliverOrderCommand, error) {
	action, err := newStaffOrderAction(orderID, staffID)
	if err != nil {
		return DeliverOrderCommand{}, err
	}
	return DeliverOrderCommand{staffOrderAction: action, guard: guard.NewConstructorGuard()}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() order.ID { return c.orderID }
func (c DeliverOrderCommand) StaffID() staff.ID { return c.staffID }
