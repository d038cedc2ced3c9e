package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/activity"
	"laundry/internal/core/domain/services"
)

// FinalizePaymentCommandHandler records the payment of a delivered order and
// completes it. The transaction row, the status change, the
// COMPLETE_TRANSACTION log entry and the cashier's last-active time commit
// together: when the transaction insert fails the order stays Processing.
//
// Example:
//
//	handler := NewFinalizePaymentCommandHandler(uowFactory)
//	cmd, _ := NewFinalizePaymentCommand(orderID, cashierID, order.Cash)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// The order is Completed and carries one transaction for its total
type FinalizePaymentCommandHandler struct {
	uowFactory UoWFactory
	finalizer  services.PaymentFinalizer
	now        func() time.Time
}

// NewFinalizePaymentCommandHandler creates a handler for payment finalization.
func NewFinalizePaymentCommandHandler(uowFactory UoWFactory) FinalizePaymentCommandHandler {
	return FinalizePaymentCommandHandler{
		uowFactory: uowFactory,
		finalizer:  services.NewPaymentFinalizer(),
		now:        time.Now,
	}
}

// Handle records the payment for the full order total. Orders that are not
// Processing, or have not been delivered yet, fail with
// errs.ErrInvalidTransition.
func (h FinalizePaymentCommandHandler) Handle(ctx context.Context, cmd FinalizePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	cashier, err := uow.StaffRepository().Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}

	now := h.now().UTC()
	tx, err := h.finalizer.Finalize(o, cashier, cmd.Method(), now)
	if err != nil {
		return err
	}

	if err = uow.TransactionRepository().Add(ctx, tx); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = recordActivity(ctx, uow, cashier, activity.CompleteTransaction, o.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
