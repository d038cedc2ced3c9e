package commands

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrFinalizePaymentCommandIsNotConstructed = errors.New(
	"FinalizePaymentCommand must be created via NewFinalizePaymentCommand constructor",
)

// FinalizePaymentCommand settles a delivered order. The amount is always the
// order total, so the command carries only the payment method.
type FinalizePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	staffID staff.ID
	method  order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewFinalizePaymentCommand(orderID order.ID, staffID staff.ID, method order.PaymentMethod) (FinalizePaymentCommand, error) {
	if err := errors.Join(orderID.Validate(), staffID.Validate(), method.Validate()); err != nil {
		return FinalizePaymentCommand{}, err
	}

	return FinalizePaymentCommand{
		orderID: orderID,
		staffID: staffID,
		method:  method,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c FinalizePaymentCommand) Validate() error {
	return c.guard.Validate(ErrFinalizePaymentCommandIsNotConstructed)
}

func (c FinalizePaymentCommand) OrderID() order.ID           { return c.orderID }
func (c FinalizePaymentCommand) StaffID() staff.ID           { return c.staffID }
func (c FinalizePaymentCommand) Method() order.PaymentMethod { return c.method }
