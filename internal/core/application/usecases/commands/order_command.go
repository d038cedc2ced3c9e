package commands

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// CancelOrderCommand cancels a Pending order. Cancellation is not attributed
// to a staff member and writes no activity log entry.
type CancelOrderCommand struct {
	orderID order.ID
	guard   guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID order.ID) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() order.ID { return c.orderID }

// DeleteOrderCommand removes an order with its service line and transactions.
type DeleteOrderCommand struct {
	orderID order.ID
	guard   guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID order.ID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() order.ID { return c.orderID }
