package services

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
)

// PaymentFinalizer settles an order: it records a single Transaction for the
// order's exact total, completes the order and marks the cashier as active.
//
// Business rules:
//   - the order must be Processing and already delivered
//   - the amount is always the order total, never a caller-supplied value
//   - nothing changes on either aggregate when any rule fails
//
// Example usage:
//
//	finalizer := services.NewPaymentFinalizer()
//	tx, err := finalizer.Finalize(o, cashier, order.Cash, time.Now())
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // not delivered yet, or already settled
//	}
type PaymentFinalizer struct{}

func NewPaymentFinalizer() PaymentFinalizer {
	return PaymentFinalizer{}
}

// Finalize returns the transaction to persist together with the order.
func (PaymentFinalizer) Finalize(o *order.Order, cashier *staff.Staff, method order.PaymentMethod, at time.Time) (*order.Transaction, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := cashier.Validate(); err != nil {
		return nil, err
	}

	tx, err := o.FinalizePayment(kernel.NewUUID(), cashier.ID(), method, at)
	if err != nil {
		return nil, err
	}

	cashier.Touch(at)
	return tx, nil
}
