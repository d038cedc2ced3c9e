package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if resp.Transactions, err = h.readTransactions(ctx, query.OrderID()); err != nil {
		return nil, err
	}
	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, id order.ID) (*GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			concat_ws(' ', NULLIF(c.first_name, ''), NULLIF(c.middle_name, ''), NULLIF(c.last_name, '')),
			o.staff_id,
			concat_ws(' ', NULLIF(s.first_name, ''), NULLIF(s.last_name, '')),
			o.status,
			o.created_at,
			o.picked_up_at,
			o.delivered_at,
			os.service_name,
			os.weight_hundredths,
			os.quantity,
			os.fast_dry,
			os.iron_only,
			os.fold,
			os.wash_cents,
			os.fast_dry_cents,
			os.iron_only_cents,
			os.fold_cents
		FROM orders o
		JOIN order_services os ON os.order_id = o.id
		LEFT JOIN customers c ON c.id = o.customer_id
		LEFT JOIN staff s ON s.id = o.staff_id
		WHERE o.id = ?
	`, int64(id)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", id.Code())
	}

	var (
		rawID, customerID, staffID, washCents, fastDryCents, ironCents, foldCents int64
		statusName                                                                string
		hundredths, quantity                                                      int
		resp                                                                      GetOrderQueryResponse
	)
	err = rows.Scan(
		&rawID,
		&customerID,
		&resp.CustomerName,
		&staffID,
		&resp.StaffName,
		&statusName,
		&resp.CreatedAt,
		&resp.PickedUpAt,
		&resp.DeliveredAt,
		&resp.Service.Name,
		&hundredths,
		&quantity,
		&resp.Service.AddOns.FastDry,
		&resp.Service.AddOns.IronOnly,
		&resp.Service.AddOns.Fold,
		&washCents,
		&fastDryCents,
		&ironCents,
		&foldCents,
	)
	if err != nil {
		return nil, err
	}

	resp.ID = order.ID(rawID)
	resp.Code = resp.ID.Code()
	resp.CustomerID = customer.ID(customerID)
	resp.StaffID = staff.ID(staffID)
	if resp.Status, err = order.ParseStatus(statusName); err != nil {
		return nil, err
	}
	if resp.Service.Weight, err = kernel.NewWeightFromHundredths(hundredths); err != nil {
		return nil, err
	}
	resp.Service.Quantity = quantity
	if resp.Service.Breakdown, err = breakdown(washCents, fastDryCents, ironCents, foldCents); err != nil {
		return nil, err
	}
	resp.Service.Total = resp.Service.Breakdown.Total()
	resp.Total = resp.Service.Total

	return &resp, rows.Err()
}

func (h GetOrderQueryHandler) readTransactions(ctx context.Context, id order.ID) ([]TransactionLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, amount_cents, payment_method, staff_id, paid_at
		FROM transactions
		WHERE order_id = ?
		ORDER BY paid_at
	`, int64(id)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]TransactionLine, 0)
	for rows.Next() {
		var (
			txID        uuid.UUID
			amountCents int64
			method      string
			staffID     int64
			paidAt      time.Time
		)
		if err = rows.Scan(&txID, &amountCents, &method, &staffID, &paidAt); err != nil {
			return nil, err
		}

		line := TransactionLine{StaffID: staff.ID(staffID), PaidAt: paidAt}
		if line.ID, err = kernel.UUIDFromBytes(txID[:]); err != nil {
			return nil, err
		}
		if line.Amount, err = kernel.NewMoney(amountCents); err != nil {
			return nil, err
		}
		if line.Method, err = order.ParsePaymentMethod(method); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func breakdown(wash, fastDry, ironOnly, fold int64) (pricing.Breakdown, error) {
	amounts := make([]kernel.Money, 0, 4)
	for _, cents := range []int64{wash, fastDry, ironOnly, fold} {
		m, err := kernel.NewMoney(cents)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		amounts = append(amounts, m)
	}
	return pricing.Breakdown{Wash: amounts[0], FastDry: amounts[1], IronOnly: amounts[2], Fold: amounts[3]}, nil
}
