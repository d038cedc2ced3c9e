// Package commands contains the engine operations that change order state.
// Every handler follows the same pattern: validate the command, open a unit of
// work, load aggregates, apply the domain rule, persist, commit.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TransactionRepoFactory provides access to the payment repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// ReferenceRepoFactory provides the customer and staff lookups.
	ReferenceRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
		StaffRepository() ports.StaffRepository
	}

	// ActivityRepoFactory provides the activity log within a transaction.
	ActivityRepoFactory interface {
		ActivityRepository() ports.ActivityRepository
	}

	// OrderUoW manages transactions for operations that only touch the order,
	// such as cancel and delete.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for staff-attributed operations: the order
	// change, the activity log entry and the staff last-active update commit
	// together or not at all.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   member, err := uow.StaffRepository().Get(ctx, staffID)
	//   // ... apply the domain operation
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TransactionRepoFactory
		ReferenceRepoFactory
		ActivityRepoFactory
	}

	// UoWFactory creates new unit of work instances for staff-attributed operations.
	UoWFactory interface {
		Create() UoW
	}
)
