package order

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// EventKind names what happened to an order.
type EventKind string

const (
	EventCreated   EventKind = "order.created"
	EventEdited    EventKind = "order.edited"
	EventPickedUp  EventKind = "order.picked_up"
	EventDelivered EventKind = "order.delivered"
	EventCompleted EventKind = "order.completed"
	EventCancelled EventKind = "order.cancelled"
	EventDeleted   EventKind = "order.deleted"
)

// Event is a lifecycle fact recorded by the aggregate and published after the
// unit of work commits.
type Event struct {
	ID         kernel.UUID
	Kind       EventKind
	OrderID    ID
	Status     Status
	Total      kernel.Money
	OccurredAt time.Time
}
