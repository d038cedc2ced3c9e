package http

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// The server depends on these single-method views of the command and query
// handlers.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (order.ID, error)
	}
	EditOrderHandler interface {
		Handle(ctx context.Context, cmd commands.EditOrderCommand) error
	}
	PickUpOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PickUpOrderCommand) error
	}
	DeliverOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeliverOrderCommand) error
	}
	FinalizePaymentHandler interface {
		Handle(ctx context.Context, cmd commands.FinalizePaymentCommand) error
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetOrderStatisticsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatisticsQuery) (ports.OrderStatistics, error)
	}
	GetAnnualStatisticsHandler interface {
		Handle(ctx context.Context, query queries.GetAnnualStatisticsQuery) (queries.AnnualStatistics, error)
	}
	GetRecentActivitiesHandler interface {
		Handle(ctx context.Context, query queries.GetRecentActivitiesQuery) ([]queries.ActivityResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder     CreateOrderHandler
	EditOrder       EditOrderHandler
	PickUpOrder     PickUpOrderHandler
	DeliverOrder    DeliverOrderHandler
	FinalizePayment FinalizePaymentHandler
	CancelOrder     CancelOrderHandler
	DeleteOrder     DeleteOrderHandler

	GetOrder            GetOrderHandler
	ListOrders          ListOrdersHandler
	GetOrderStatistics  GetOrderStatisticsHandler
	GetAnnualStatistics GetAnnualStatisticsHandler
	GetRecentActivities GetRecentActivitiesHandler
}
