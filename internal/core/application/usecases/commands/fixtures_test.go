package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"

	"github.com/stretchr/testify/require"
)

var orderedAt = time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

func newCustomer(t *testing.T, id customer.ID) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(id, "Maria", "", "Santos", "maria@example.com", "09171234567", nil)
	require.NoError(t, err)
	return c
}

func newStaff(t *testing.T, id staff.ID) *staff.Staff {
	t.Helper()
	s, err := staff.RestoreStaff(id, "Jun", "Cruz", "jun@washy.test", staff.RoleStaff, nil)
	require.NoError(t, err)
	return s
}

func newPendingOrder(t *testing.T, id order.ID) *order.Order {
	t.Helper()
	w, err := kernel.NewWeight(3.5)
	require.NoError(t, err)
	line, err := order.NewService(w, 2, pricing.AddOns{FastDry: true, Fold: true})
	require.NoError(t, err)
	o, err := order.NewOrder(customer.ID(1), staff.ID(2), line, orderedAt)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	o.ClearDomainEvents()
	return o
}

func newProcessingOrder(t *testing.T, id order.ID, delivered bool) *order.Order {
	t.Helper()
	o := newPendingOrder(t, id)
	require.NoError(t, o.PickUp(staff.ID(2), orderedAt.Add(time.Hour)))
	if delivered {
		require.NoError(t, o.Deliver(orderedAt.Add(4*time.Hour)))
	}
	o.ClearDomainEvents()
	return o
}
