package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// EventPublisher delivers committed order lifecycle events to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
