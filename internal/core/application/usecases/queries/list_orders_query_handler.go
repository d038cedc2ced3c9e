package queries

import (
	"context"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID           int64
	CustomerName string
	Status       string
	TotalCents   int64
	CreatedAt    time.Time
	DeliveredAt  *time.Time
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders AS o").
		Select(`o.id,
			concat_ws(' ', NULLIF(c.first_name, ''), NULLIF(c.middle_name, ''), NULLIF(c.last_name, '')) AS customer_name,
			o.status,
			o.total_cents,
			o.created_at,
			o.delivered_at`).
		Joins("LEFT JOIN customers c ON c.id = o.customer_id")

	if status := query.Status(); status != nil {
		tx = tx.Where("o.status = ?", status.String())
	}
	if term := query.Search(); term != "" {
		tx = tx.Where(searchCondition(h.db, term))
	}

	var rows []orderSummaryRow
	if err := tx.Order("o.created_at DESC, o.id DESC").Limit(query.Limit()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		status, err := order.ParseStatus(row.Status)
		if err != nil {
			return nil, err
		}
		total, err := kernel.NewMoney(row.TotalCents)
		if err != nil {
			return nil, err
		}
		id := order.ID(row.ID)
		summaries = append(summaries, OrderSummary{
			ID:           id,
			Code:         id.Code(),
			CustomerName: row.CustomerName,
			Status:       status,
			Total:        total,
			CreatedAt:    row.CreatedAt,
			DeliveredAt:  row.DeliveredAt,
		})
	}
	return summaries, nil
}

// searchCondition matches a term against the order number, the customer's
// first-last name and the status. A full code such as WSHY#007 matches the
// order exactly.
func searchCondition(db *gorm.DB, term string) *gorm.DB {
	like := "%" + escapeLike(strings.ToLower(term)) + "%"
	cond := db.Where("CAST(o.id AS TEXT) LIKE ?", like).
		Or("LOWER(concat_ws(' ', c.first_name, c.last_name)) LIKE ?", like).
		Or("LOWER(o.status) LIKE ?", like)

	if id, err := order.ParseCode(term); err == nil {
		cond = cond.Or("o.id = ?", int64(id))
	}
	return cond
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
