package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListOrdersParams are the query parameters of GET /api/v1/orders.
type ListOrdersParams struct {
	Status *string `form:"status" json:"status,omitempty"`
	Q      *string `form:"q" json:"q,omitempty"`
	Limit  *int    `form:"limit" json:"limit,omitempty"`
}

// GetActivitiesParams are the query parameters of GET /api/v1/activities.
type GetActivitiesParams struct {
	Limit *int `form:"limit" json:"limit,omitempty"`
}

// GetAnnualReportParams are the query parameters of GET /api/v1/reports/annual.
type GetAnnualReportParams struct {
	Year *int `form:"year" json:"year,omitempty"`
}

// ServerInterface lists one method per operation of api/openapi.yml.
type ServerInterface interface {
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	CreateOrder(ctx echo.Context) error
	GetOrder(ctx echo.Context, orderID string) error
	EditOrder(ctx echo.Context, orderID string) error
	DeleteOrder(ctx echo.Context, orderID string) error
	PickUpOrder(ctx echo.Context, orderID string) error
	DeliverOrder(ctx echo.Context, orderID string) error
	FinalizePayment(ctx echo.Context, orderID string) error
	CancelOrder(ctx echo.Context, orderID string) error
	GetOrderTag(ctx echo.Context, orderID string) error
	GetStatistics(ctx echo.Context) error
	GetAnnualReport(ctx echo.Context, params GetAnnualReportParams) error
	GetActivities(ctx echo.Context, params GetActivitiesParams) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the
// server. Binding failures are answered with 400.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return badParameter("status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q); err != nil {
		return badParameter("q", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return badParameter("limit", err)
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetStatistics(ctx echo.Context) error {
	return w.Handler.GetStatistics(ctx)
}

func (w *ServerInterfaceWrapper) GetAnnualReport(ctx echo.Context) error {
	var params GetAnnualReportParams

	if err := runtime.BindQueryParameter("form", true, false, "year", ctx.QueryParams(), &params.Year); err != nil {
		return badParameter("year", err)
	}

	return w.Handler.GetAnnualReport(ctx, params)
}

func (w *ServerInterfaceWrapper) GetActivities(ctx echo.Context) error {
	var params GetActivitiesParams

	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return badParameter("limit", err)
	}

	return w.Handler.GetActivities(ctx, params)
}

// withOrderID adapts an operation taking the orderId path parameter.
func (w *ServerInterfaceWrapper) withOrderID(op func(echo.Context, string) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var orderID string
		err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			return badParameter("orderId", err)
		}
		return op(ctx, orderID)
	}
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under the API base path.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/orders", w.ListOrders)
	router.POST("/api/v1/orders", w.CreateOrder)
	router.GET("/api/v1/orders/:orderId", w.withOrderID(si.GetOrder))
	router.PUT("/api/v1/orders/:orderId", w.withOrderID(si.EditOrder))
	router.DELETE("/api/v1/orders/:orderId", w.withOrderID(si.DeleteOrder))
	router.POST("/api/v1/orders/:orderId/pickup", w.withOrderID(si.PickUpOrder))
	router.POST("/api/v1/orders/:orderId/delivery", w.withOrderID(si.DeliverOrder))
	router.POST("/api/v1/orders/:orderId/payment", w.withOrderID(si.FinalizePayment))
	router.POST("/api/v1/orders/:orderId/cancellation", w.withOrderID(si.CancelOrder))
	router.GET("/api/v1/orders/:orderId/tag.png", w.withOrderID(si.GetOrderTag))
	router.GET("/api/v1/dashboard/statistics", w.GetStatistics)
	router.GET("/api/v1/reports/annual", w.GetAnnualReport)
	router.GET("/api/v1/activities", w.GetActivities)
}

func badParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
}
