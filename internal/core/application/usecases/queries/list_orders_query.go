package queries

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first. Status narrows the list to one
// lifecycle state. Search matches the order code or number, the customer's
// name, or the status name, case-insensitively.
//
// Example:
//
//	q, _ := NewListOrdersQuery(nil, "dela cruz", 0)
//	summaries, err := handler.Handle(ctx, q)
type ListOrdersQuery struct {
	status *order.Status
	search string
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery uses DefaultListLimit when limit is 0.
func NewListOrdersQuery(status *order.Status, search string, limit int) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}

	return ListOrdersQuery{
		status: status,
		search: strings.TrimSpace(search),
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *order.Status { return q.status }
func (q ListOrdersQuery) Search() string        { return q.search }
func (q ListOrdersQuery) Limit() int            { return q.limit }

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID           order.ID
	Code         string
	CustomerName string
	Status       order.Status
	Total        kernel.Money
	CreatedAt    time.Time
	DeliveredAt  *time.Time
}
