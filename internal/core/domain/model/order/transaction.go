package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrTransactionIsNotConstructed = errors.New("Transaction must be created by Order.FinalizePayment or RestoreTransaction")

// Transaction is the payment recorded when an order is finalized.
type Transaction struct {
	id      kernel.UUID
	orderID ID
	amount  kernel.Money
	method  PaymentMethod
	staffID staff.ID
	paidAt  time.Time

	guard guard.ConstructorGuard
}

// RestoreTransaction rebuilds a stored payment.
func RestoreTransaction(
	id kernel.UUID,
	orderID ID,
	amount kernel.Money,
	method PaymentMethod,
	staffID staff.ID,
	paidAt time.Time,
) (*Transaction, error) {
	var paidErr error
	if paidAt.IsZero() {
		paidErr = errs.NewValueIsRequiredError("paidAt")
	}
	if err := errors.Join(id.Validate(), orderID.Validate(), method.Validate(), staffID.Validate(), paidErr); err != nil {
		return nil, err
	}

	return &Transaction{
		id:      id,
		orderID: orderID,
		amount:  amount,
		method:  method,
		staffID: staffID,
		paidAt:  paidAt,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (t *Transaction) Validate() error {
	if t == nil {
		return ErrTransactionIsNotConstructed
	}
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

func (t *Transaction) ID() kernel.UUID       { return t.id }
func (t *Transaction) OrderID() ID           { return t.orderID }
func (t *Transaction) Amount() kernel.Money  { return t.amount }
func (t *Transaction) Method() PaymentMethod { return t.method }
func (t *Transaction) StaffID() staff.ID     { return t.staffID }
func (t *Transaction) PaidAt() time.Time     { return t.paidAt }
