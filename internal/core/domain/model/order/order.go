package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotDelivered is the cause attached when payment is finalized before delivery.
	ErrOrderIsNotDelivered = errors.New("order has no delivery time")
)

// Order is the aggregate root of a laundry request.
//
// Invariants:
//   - the total always equals the total of the service line
//   - the service line only changes while the order is Pending
//   - at most one transaction exists, and it exists iff the order is Completed
//   - the status only moves along the transitions defined on Status
type Order struct {
	id          ID
	customerID  customer.ID
	staffID     staff.ID
	createdAt   time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	status      Status
	service     *Service
	transaction *Transaction

	// version is the optimistic-concurrency token persisted with the order.
	version int

	events []Event
	guard  guard.ConstructorGuard
}

// NewOrder opens a Pending order for a customer, created by staffID.
// The ID is assigned later by storage through AssignID.
//
// Example:
//
//	weight, _ := kernel.NewWeight(3.5)
//	line, _ := order.NewService(weight, 2, pricing.AddOns{FastDry: true, Fold: true})
//	o, err := order.NewOrder(customerID, staffID, line, time.Now())
//	// o.Total().String() == "1890.00"
func NewOrder(customerID customer.ID, staffID staff.ID, service *Service, at time.Time) (*Order, error) {
	var createdErr error
	if at.IsZero() {
		createdErr = errs.NewValueIsRequiredError("createdAt")
	}
	if err := errors.Join(
		customerID.Validate(),
		staffID.Validate(),
		service.Validate(),
		createdErr,
	); err != nil {
		return nil, err
	}

	return &Order{
		customerID: customerID,
		staffID:    staffID,
		createdAt:  at,
		status:     Pending,
		service:    service,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Snapshot carries the persisted state of an order into RestoreOrder.
type Snapshot struct {
	ID          ID
	CustomerID  customer.ID
	StaffID     staff.ID
	CreatedAt   time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Status      Status
	Service     *Service
	Transaction *Transaction
	Version     int
}

// RestoreOrder rebuilds an order loaded from storage and checks that the
// stored state is one the lifecycle can actually produce.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.StaffID.Validate(),
		s.Status.Validate(),
		s.Service.Validate(),
	); err != nil {
		return nil, err
	}

	if s.Status == Completed && s.Transaction == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("transaction", fmt.Errorf("%s order has no transaction", s.Status))
	}
	if s.Status != Completed && s.Transaction != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("transaction", fmt.Errorf("%s order has a transaction", s.Status))
	}
	if s.Transaction != nil {
		if err := s.Transaction.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:          s.ID,
		customerID:  s.CustomerID,
		staffID:     s.StaffID,
		createdAt:   s.CreatedAt,
		pickedUpAt:  s.PickedUpAt,
		deliveredAt: s.DeliveredAt,
		status:      s.Status,
		service:     s.Service,
		transaction: s.Transaction,
		version:     s.Version,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AssignID stores the identifier handed out by storage and records the
// creation event. It can only be called once.
func (o *Order) AssignID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("order already has id %s", o.id.Code()))
	}
	o.id = id
	o.record(EventCreated, o.createdAt)
	return nil
}

func (o *Order) ID() ID                    { return o.id }
func (o *Order) Code() string              { return o.id.Code() }
func (o *Order) CustomerID() customer.ID   { return o.customerID }
func (o *Order) StaffID() staff.ID         { return o.staffID }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) PickedUpAt() *time.Time    { return o.pickedUpAt }
func (o *Order) DeliveredAt() *time.Time   { return o.deliveredAt }
func (o *Order) Status() Status            { return o.status }
func (o *Order) Service() *Service         { return o.service }
func (o *Order) Transaction() *Transaction { return o.transaction }
func (o *Order) Version() int              { return o.version }

// Total is the amount owed for the order.
func (o *Order) Total() kernel.Money {
	return o.service.Total()
}

// AdvanceVersion is called by the repository after a successful write.
func (o *Order) AdvanceVersion() {
	o.version++
}

// Edit replaces the service line of a Pending order. The status is unchanged.
func (o *Order) Edit(service *Service, at time.Time) error {
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}
	if err := service.Validate(); err != nil {
		return err
	}
	o.service = service
	o.record(EventEdited, at)
	return nil
}

// PickUp moves the order to Processing. The staff member collecting the
// laundry replaces the creator as the order's staff reference.
func (o *Order) PickUp(staffID staff.ID, at time.Time) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.pickedUpAt = &at
	o.staffID = staffID
	o.record(EventPickedUp, at)
	return nil
}

// Deliver stamps the delivery time of a Processing order. It does not change
// the status; payment finalization does. Delivering again overwrites the time.
func (o *Order) Deliver(at time.Time) error {
	if err := o.status.ValidateDeliver(); err != nil {
		return err
	}
	o.deliveredAt = &at
	o.record(EventDelivered, at)
	return nil
}

// FinalizePayment records the payment for the full total and completes the
// order. The order must have been delivered.
func (o *Order) FinalizePayment(transactionID kernel.UUID, staffID staff.ID, method PaymentMethod, at time.Time) (*Transaction, error) {
	if o.deliveredAt == nil {
		return nil, errs.NewInvalidTransitionErrorWithCause("finalize payment", o.status.String(), ErrOrderIsNotDelivered)
	}
	newStatus, err := o.status.Complete()
	if err != nil {
		return nil, err
	}

	tx, err := RestoreTransaction(transactionID, o.id, o.Total(), method, staffID, at)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	o.transaction = tx
	o.record(EventCompleted, at)
	return tx, nil
}

// Cancel moves a Pending order to Cancelled. Cancelled is terminal.
func (o *Order) Cancel(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.record(EventCancelled, at)
	return nil
}

// ValidateDelete refuses to drop cancelled orders so their history is kept.
func (o *Order) ValidateDelete() error {
	if o.status == Cancelled {
		return errs.NewObjectIsProtectedError("order", o.id.Code(), "cancelled orders are kept for history")
	}
	return nil
}

// Delete checks ValidateDelete and records the deletion event; the repository
// performs the removal.
func (o *Order) Delete(at time.Time) error {
	if err := o.ValidateDelete(); err != nil {
		return err
	}
	o.record(EventDeleted, at)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	return append([]Event(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(kind EventKind, at time.Time) {
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Kind:       kind,
		OrderID:    o.id,
		Status:     o.status,
		Total:      o.Total(),
		OccurredAt: at,
	})
}
