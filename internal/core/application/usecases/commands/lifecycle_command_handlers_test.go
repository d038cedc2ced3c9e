package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activityOf(kind activity.Type, id order.ID) any {
	return mock.MatchedBy(func(e *activity.Entry) bool {
		return e.Type() == kind && e.OrderID() != nil && *e.OrderID() == id
	})
}

func TestEditOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should reprice a pending order", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewEditOrderCommand(order.ID(3), staff.ID(2), 2, 1, pricing.AddOns{IronOnly: true})
		require.NoError(t, err)
		o := newPendingOrder(t, order.ID(3))
		member := newStaff(t, staff.ID(2))

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(3)).Return(o, nil).Once(),
			m.staff.On("Get", ctx, staff.ID(2)).Return(member, nil).Once(),
			m.orders.On("Update", ctx, o).Return(nil).Once(),
			m.activities.On("Add", ctx, activityOf(activity.EditOrder, order.ID(3))).Return(nil).Once(),
			m.staff.On("Update", ctx, member).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewEditOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "300.00", o.Total().String())
		assert.Equal(t, order.Pending, o.Status())
		m.assertExpectations(t)
	})

	t.Run("should refuse a processing order and keep its total", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewEditOrderCommand(order.ID(3), staff.ID(2), 2, 1, pricing.AddOns{})
		require.NoError(t, err)
		o := newProcessingOrder(t, order.ID(3), false)

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(3)).Return(o, nil).Once(),
			m.staff.On("Get", ctx, staff.ID(2)).Return(newStaff(t, staff.ID(2)), nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewEditOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, "1890.00", o.Total().String())
		m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})
}

func TestPickUpOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should move the order to processing under the picking staff", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPickUpOrderCommand(order.ID(5), staff.ID(9))
		require.NoError(t, err)
		o := newPendingOrder(t, order.ID(5))
		member := newStaff(t, staff.ID(9))

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(5)).Return(o, nil).Once(),
			m.staff.On("Get", ctx, staff.ID(9)).Return(member, nil).Once(),
			m.orders.On("Update", ctx, o).Return(nil).Once(),
			m.activities.On("Add", ctx, activityOf(activity.PickUpOrder, order.ID(5))).Return(nil).Once(),
			m.staff.On("Update", ctx, member).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewPickUpOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, staff.ID(9), o.StaffID())
		assert.NotNil(t, o.PickedUpAt())
		m.assertExpectations(t)
	})

	t.Run("should fail the second time", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPickUpOrderCommand(order.ID(5), staff.ID(9))
		require.NoError(t, err)

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(5)).Return(newProcessingOrder(t, order.ID(5), false), nil).Once(),
			m.staff.On("Get", ctx, staff.ID(9)).Return(newStaff(t, staff.ID(9)), nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewPickUpOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		m.assertExpectations(t)
	})

	t.Run("should surface a lost concurrent update", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPickUpOrderCommand(order.ID(5), staff.ID(9))
		require.NoError(t, err)
		o := newPendingOrder(t, order.ID(5))

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(5)).Return(o, nil).Once(),
			m.staff.On("Get", ctx, staff.ID(9)).Return(newStaff(t, staff.ID(9)), nil).Once(),
			m.orders.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order")).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewPickUpOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		m.activities.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})
}

func TestDeliverOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should stamp delivery and keep processing", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeliverOrderCommand(order.ID(5), staff.ID(9))
		require.NoError(t, err)
		o := newProcessingOrder(t, order.ID(5), false)
		member := newStaff(t, staff.ID(9))

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(5)).Return(o, nil).Once(),
			m.staff.On("Get", ctx, staff.ID(9)).Return(member, nil).Once(),
			m.orders.On("Update", ctx, o).Return(nil).Once(),
			m.activities.On("Add", ctx, activityOf(activity.DeliverOrder, order.ID(5))).Return(nil).Once(),
			m.staff.On("Update", ctx, member).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewDeliverOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.NotNil(t, o.DeliveredAt())
		m.assertExpectations(t)
	})

	t.Run("should refuse a pending order", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeliverOrderCommand(order.ID(5), staff.ID(9))
		require.NoError(t, err)

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(5)).Return(newPendingOrder(t, order.ID(5)), nil).Once(),
			m.staff.On("Get", ctx, staff.ID(9)).Return(newStaff(t, staff.ID(9)), nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewDeliverOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		m.assertExpectations(t)
	})
}

func TestFinalizePaymentCommandHandler_Handle(t *testing.T) {
	t.Run("should persist the transaction then complete the order", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewFinalizePaymentCommand(order.ID(5), staff.ID(9), order.Cash)
		require.NoError(t, err)
		o := newProcessingOrder(t, order.ID(5), true)
		cashier := newStaff(t, staff.ID(9))

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(5)).Return(o, nil).Once(),
			m.staff.On("Get", ctx, staff.ID(9)).Return(cashier, nil).Once(),
			m.transactions.On("Add", ctx, mock.MatchedBy(func(tx *order.Transaction) bool {
				return tx.Amount().String() == "1890.00" && tx.Method() == order.Cash && tx.OrderID() == order.ID(5)
			})).Return(nil).Once(),
			m.orders.On("Update", ctx, o).Return(nil).Once(),
			m.activities.On("Add", ctx, activityOf(activity.CompleteTransaction, order.ID(5))).Return(nil).Once(),
			m.staff.On("Update", ctx, cashier).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewFinalizePaymentCommandHandler(m.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		m.assertExpectations(t)
	})

	t.Run("should not write the order when the transaction insert fails", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewFinalizePaymentCommand(order.ID(5), staff.ID(9), order.Card)
		require.NoError(t, err)

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(5)).Return(newProcessingOrder(t, order.ID(5), true), nil).Once(),
			m.staff.On("Get", ctx, staff.ID(9)).Return(newStaff(t, staff.ID(9)), nil).Once(),
			m.transactions.On("Add", ctx, mock.AnythingOfType("*order.Transaction")).
				Return(errs.NewPersistenceError("insert transaction", assert.AnError)).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewFinalizePaymentCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPersistence)
		m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("should refuse an undelivered order", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewFinalizePaymentCommand(order.ID(5), staff.ID(9), order.Cash)
		require.NoError(t, err)

		m := newUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, order.ID(5)).Return(newProcessingOrder(t, order.ID(5), false), nil).Once(),
			m.staff.On("Get", ctx, staff.ID(9)).Return(newStaff(t, staff.ID(9)), nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewFinalizePaymentCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		m.transactions.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})
}

func TestNewFinalizePaymentCommand_RejectsUnknownMethod(t *testing.T) {
	_, err := commands.NewFinalizePaymentCommand(order.ID(5), staff.ID(9), order.PaymentMethod("Cheque"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
