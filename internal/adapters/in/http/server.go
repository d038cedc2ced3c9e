// Package http exposes the laundry engine over a JSON API served by echo.
package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"

	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"
)

// DefaultTagSize is the edge length in pixels of a bag tag QR code.
const DefaultTagSize = 256

// Server implements ServerInterface on top of the engine's use cases.
type Server struct {
	h       Handlers
	tagSize int
	now     func() time.Time
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, tagSize int) *Server {
	if tagSize <= 0 {
		tagSize = DefaultTagSize
	}
	return &Server{h: handlers, tagSize: tagSize, now: time.Now}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = &parsed
	}
	var search string
	if params.Q != nil {
		search = *params.Q
	}
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(status, search, limit)
	if err != nil {
		return err
	}
	summaries, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]OrderSummary, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, toOrderSummary(summary))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		customer.ID(body.CustomerID),
		staff.ID(body.StaffID),
		body.WeightKg,
		body.Quantity,
		addOns(body.ServiceForm),
	)
	if err != nil {
		return err
	}

	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/v1/orders/%d", int64(id)))
	return ctx.JSON(http.StatusCreated, OrderRef{ID: int64(id), Code: id.Code()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	id, err := order.ParseCode(orderID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	details, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// EditOrder handles PUT /api/v1/orders/{orderId}.
func (s *Server) EditOrder(ctx echo.Context, orderID string) error {
	id, err := order.ParseCode(orderID)
	if err != nil {
		return err
	}
	var body ServiceForm
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(id, staff.ID(body.StaffID), body.WeightKg, body.Quantity, addOns(body))
	if err != nil {
		return err
	}
	if err = s.h.EditOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID string) error {
	id, err := order.ParseCode(orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PickUpOrder handles POST /api/v1/orders/{orderId}/pickup.
func (s *Server) PickUpOrder(ctx echo.Context, orderID string) error {
	id, member, err := staffAction(ctx, orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewPickUpOrderCommand(id, member)
	if err != nil {
		return err
	}
	if err = s.h.PickUpOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/delivery.
func (s *Server) DeliverOrder(ctx echo.Context, orderID string) error {
	id, member, err := staffAction(ctx, orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeliverOrderCommand(id, member)
	if err != nil {
		return err
	}
	if err = s.h.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// FinalizePayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) FinalizePayment(ctx echo.Context, orderID string) error {
	id, err := order.ParseCode(orderID)
	if err != nil {
		return err
	}
	var body Payment
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	method, err := order.ParsePaymentMethod(body.PaymentMethod)
	if err != nil {
		return err
	}

	cmd, err := commands.NewFinalizePaymentCommand(id, staff.ID(body.StaffID), method)
	if err != nil {
		return err
	}
	if err = s.h.FinalizePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancellation.
func (s *Server) CancelOrder(ctx echo.Context, orderID string) error {
	id, err := order.ParseCode(orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTag handles GET /api/v1/orders/{orderId}/tag.png. The QR code
// carries the order code printed on the laundry bag.
func (s *Server) GetOrderTag(ctx echo.Context, orderID string) error {
	id, err := order.ParseCode(orderID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	if _, err = s.h.GetOrder.Handle(ctx.Request().Context(), query); err != nil {
		return err
	}

	png, err := qrcode.Encode(id.Code(), qrcode.Medium, s.tagSize)
	if err != nil {
		return err
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

// GetStatistics handles GET /api/v1/dashboard/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.h.GetOrderStatistics.Handle(ctx.Request().Context(), queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toStatistics(stats))
}

// GetAnnualReport handles GET /api/v1/reports/annual. The year defaults to
// the current one.
func (s *Server) GetAnnualReport(ctx echo.Context, params GetAnnualReportParams) error {
	year := s.now().Year()
	if params.Year != nil {
		year = *params.Year
	}
	query, err := queries.NewGetAnnualStatisticsQuery(year)
	if err != nil {
		return err
	}

	stats, err := s.h.GetAnnualStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAnnualReport(stats))
}

// GetActivities handles GET /api/v1/activities.
func (s *Server) GetActivities(ctx echo.Context, params GetActivitiesParams) error {
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewGetRecentActivitiesQuery(limit)
	if err != nil {
		return err
	}

	feed, err := s.h.GetRecentActivities.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Activity, 0, len(feed))
	for _, a := range feed {
		response = append(response, toActivity(a))
	}
	return ctx.JSON(http.StatusOK, response)
}

func staffAction(ctx echo.Context, orderID string) (order.ID, staff.ID, error) {
	id, err := order.ParseCode(orderID)
	if err != nil {
		return 0, 0, err
	}
	var body StaffAction
	if err = ctx.Bind(&body); err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return id, staff.ID(body.StaffID), nil
}

func addOns(form ServiceForm) pricing.AddOns {
	return pricing.AddOns{FastDry: form.FastDry, IronOnly: form.IronOnly, Fold: form.Fold}
}
