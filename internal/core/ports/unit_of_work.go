package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single engine operation.
// Every repository it hands out shares the transaction started by Begin.
// Domain events of the orders written through it are published only after
// Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit makes the changes durable and then publishes collected events.
	Commit(ctx context.Context) error

	// Rollback discards the changes. Calling it after Commit is a no-op error
	// that callers ignore in their deferred cleanup.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	TransactionRepository() TransactionRepository
	CustomerRepository() CustomerRepository
	StaffRepository() StaffRepository
	ActivityRepository() ActivityRepository
}
