package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The set is closed: there is no
// separate "ready for delivery" state, a Processing order is awaiting delivery.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Processing
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "Pending",
	Processing: "Processing",
	Completed:  "Completed",
	Cancelled:  "Cancelled",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, Completed, Cancelled}
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseStatus maps a stored or user-supplied name back to a Status, ignoring case.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// PickUp moves Pending to Processing.
func (s Status) PickUp() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("pick up", s.String())
	}
	return Processing, nil
}

// Complete moves Processing to Completed. It is only reached through payment
// finalization.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return Unknown, errs.NewInvalidTransitionError("complete", s.String())
	}
	return Completed, nil
}

// Cancel moves Pending to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// ValidateEdit allows changing weight, quantity and services only while Pending.
func (s Status) ValidateEdit() error {
	if s != Pending {
		return errs.NewInvalidTransitionError("edit", s.String())
	}
	return nil
}

// ValidateDeliver allows delivery only for picked-up orders.
func (s Status) ValidateDeliver() error {
	if s != Processing {
		return errs.NewInvalidTransitionError("deliver", s.String())
	}
	return nil
}

// IsTerminal reports statuses with no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
