package commands

import (
	"errors"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand opens a new Pending order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, staffID, 3.5, 2, pricing.AddOns{FastDry: true, Fold: true})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
//	fmt.Println(id.Code()) // WSHY#007
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID customer.ID
	staffID    staff.ID
	weight     kernel.Weight
	quantity   int
	addOns     pricing.AddOns

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order form: customer required, weight
// in (0, 7.00] with at most two decimals, quantity at least 1.
func NewCreateOrderCommand(
	customerID customer.ID,
	staffID staff.ID,
	weightKg float64,
	quantity int,
	addOns pricing.AddOns,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		addOns: addOns,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setStaffID(staffID),
		cmd.setWeight(weightKg),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() customer.ID { return c.customerID }
func (c CreateOrderCommand) StaffID() staff.ID       { return c.staffID }
func (c CreateOrderCommand) Weight() kernel.Weight   { return c.weight }
func (c CreateOrderCommand) Quantity() int           { return c.quantity }
func (c CreateOrderCommand) AddOns() pricing.AddOns  { return c.addOns }

func (c *CreateOrderCommand) setCustomerID(id customer.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setStaffID(id staff.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.staffID = id
	return nil
}

func (c *CreateOrderCommand) setWeight(kg float64) error {
	w, err := kernel.NewWeight(kg)
	if err != nil {
		return err
	}
	c.weight = w
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if err := pricing.ValidateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}
