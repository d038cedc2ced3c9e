// Package queries contains the read side of the laundry engine. Handlers read
// straight from the database with raw SQL and never load aggregates.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its service line and payments.
type GetOrderQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID order.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() order.ID {
	return q.orderID
}

// GetOrderQueryResponse is the order detail view.
type GetOrderQueryResponse struct {
	ID           order.ID
	Code         string
	CustomerID   customer.ID
	CustomerName string
	StaffID      staff.ID
	StaffName    string
	Status       order.Status
	CreatedAt    time.Time
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
	Service      ServiceLine
	Total        kernel.Money
	Transactions []TransactionLine
}

// ServiceLine is the priced service of an order.
type ServiceLine struct {
	Name      string
	Weight    kernel.Weight
	Quantity  int
	AddOns    pricing.AddOns
	Breakdown pricing.Breakdown
	Total     kernel.Money
}

// TransactionLine is a recorded payment.
type TransactionLine struct {
	ID      kernel.UUID
	Amount  kernel.Money
	Method  order.PaymentMethod
	StaffID staff.ID
	PaidAt  time.Time
}
