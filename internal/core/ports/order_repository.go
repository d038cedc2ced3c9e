// Package ports defines the contracts between the laundry order engine and its
// infrastructure: repositories, the unit of work, event publishing and the
// dashboard statistics cache.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their service line. The payment transaction is read with the
// order but written through TransactionRepository.
type OrderRepository interface {
	// Add inserts a new order with its service line and assigns the
	// storage-generated ID to the aggregate through order.AssignID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate when the stored version still matches
	// aggregate.Version(), then advances the version. A lost race returns
	// errs.ErrVersionIsInvalid and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its service line and transaction.
	// Returns errs.ErrObjectNotFound when the ID is unknown.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// Delete removes the order together with its service line and
	// transactions. The version check of Update applies.
	Delete(ctx context.Context, aggregate *order.Order) error
}

// TransactionRepository stores payments recorded by payment finalization.
type TransactionRepository interface {
	Add(ctx context.Context, tx *order.Transaction) error
}
