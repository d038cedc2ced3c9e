package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand replaces the weight, quantity and add-ons of a Pending order.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  order.ID
	staffID  staff.ID
	weight   kernel.Weight
	quantity int
	addOns   pricing.AddOns

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(
	orderID order.ID,
	staffID staff.ID,
	weightKg float64,
	quantity int,
	addOns pricing.AddOns,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		addOns: addOns,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStaffID(staffID),
		cmd.setWeight(weightKg),
		cmd.setQuantity(quantity),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) OrderID() order.ID      { return c.orderID }
func (c EditOrderCommand) StaffID() staff.ID      { return c.staffID }
func (c EditOrderCommand) Weight() kernel.Weight  { return c.weight }
func (c EditOrderCommand) Quantity() int          { return c.quantity }
func (c EditOrderCommand) AddOns() pricing.AddOns { return c.addOns }

func (c *EditOrderCommand) setOrderID(id order.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *EditOrderCommand) setStaffID(id staff.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.staffID = id
	return nil
}

func (c *EditOrderCommand) setWeight(kg float64) error {
	w, err := kernel.NewWeight(kg)
	if err != nil {
		return err
	}
	c.weight = w
	return nil
}

func (c *EditOrderCommand) setQuantity(quantity int) error {
	if err := pricing.ValidateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}
