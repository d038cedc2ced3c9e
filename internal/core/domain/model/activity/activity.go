// Package activity models the staff activity log that feeds the dashboard feed.
package activity

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Type is the kind of action a staff member performed.
type Type string

const (
	CreateOrder         Type = "CREATE_ORDER"
	EditOrder           Type = "EDIT_ORDER"
	CreateCustomer      Type = "CREATE_CUSTOMER"
	EditCustomer        Type = "EDIT_CUSTOMER"
	PickUpOrder         Type = "PICKUP_ORDER"
	DeliverOrder        Type = "DELIVER_ORDER"
	CompleteTransaction Type = "COMPLETE_TRANSACTION"
)

func (t Type) Validate() error {
	switch t {
	case CreateOrder, EditOrder, CreateCustomer, EditCustomer, PickUpOrder, DeliverOrder, CompleteTransaction:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("activityType", fmt.Errorf("%q is not a known activity", string(t)))
}

// Entry is one row of the activity log. Order and customer references are
// optional and depend on the type.
type Entry struct {
	id         kernel.UUID
	staffID    staff.ID
	kind       Type
	orderID    *order.ID
	customerID *customer.ID
	at         time.Time

	guard guard.ConstructorGuard
}

// NewEntry records an order-related action.
func NewEntry(staffID staff.ID, kind Type, orderID order.ID, at time.Time) (*Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return RestoreEntry(kernel.NewUUID(), staffID, kind, &orderID, nil, at)
}

// RestoreEntry rebuilds a stored log entry.
func RestoreEntry(id kernel.UUID, staffID staff.ID, kind Type, orderID *order.ID, customerID *customer.ID, at time.Time) (*Entry, error) {
	var atErr error
	if at.IsZero() {
		atErr = errs.NewValueIsRequiredError("activityTime")
	}
	if err := errors.Join(id.Validate(), staffID.Validate(), kind.Validate(), atErr); err != nil {
		return nil, err
	}

	return &Entry{
		id:         id,
		staffID:    staffID,
		kind:       kind,
		orderID:    orderID,
		customerID: customerID,
		at:         at,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() kernel.UUID          { return e.id }
func (e *Entry) StaffID() staff.ID        { return e.staffID }
func (e *Entry) Type() Type               { return e.kind }
func (e *Entry) OrderID() *order.ID       { return e.orderID }
func (e *Entry) CustomerID() *customer.ID { return e.customerID }
func (e *Entry) At() time.Time            { return e.at }

// Describe renders the entry for the recent-activity feed, e.g.
// "Picked up order WSHY#007".
func (e *Entry) Describe() string {
	return Describe(e.kind, e.orderID, e.customerID)
}

// Describe renders an activity without needing a constructed Entry; read
// models use it on raw rows.
func Describe(kind Type, orderID *order.ID, customerID *customer.ID) string {
	orderText := func(with, without string) string {
		if orderID == nil {
			return without
		}
		return with + " " + orderID.Code()
	}
	customerText := func(with, without string) string {
		if customerID == nil {
			return without
		}
		return fmt.Sprintf("%s #%d", with, int64(*customerID))
	}

	switch kind {
	case CreateOrder:
		return orderText("Created order", "Created an order")
	case EditOrder:
		return orderText("Edited order", "Edited an order")
	case CreateCustomer:
		return customerText("Created customer", "Created a customer")
	case EditCustomer:
		return customerText("Edited customer", "Edited a customer")
	case PickUpOrder:
		return orderText("Picked up order", "Picked up an order")
	case DeliverOrder:
		return orderText("Delivered order", "Delivered an order")
	case CompleteTransaction:
		return orderText("Completed transaction for order", "Completed a transaction")
	default:
		return string(kind)
	}
}
