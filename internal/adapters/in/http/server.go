package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/report"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}

	AddLineItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddLineItemCommand) (*order.Order, error)
	}

	ChangeLineItemStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeLineItemStatusCommand) (*order.Order, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}

	BuildReportHandler interface {
		Handle(ctx context.Context, query queries.BuildReportQuery) (report.Report, error)
	}

	ExportReportHandler interface {
		Handle(ctx context.Context, query queries.ExportReportQuery) (queries.ExportReportResponse, error)
	}
)

// Handlers bundles the use cases the HTTP surface exposes.
type Handlers struct {
	CreateOrder          CreateOrderHandler
	UpdateOrderStatus    UpdateOrderStatusHandler
	AddLineItem          AddLineItemHandler
	ChangeLineItemStatus ChangeLineItemStatusHandler
	GetOrder             GetOrderHandler
	ListOrders           ListOrdersHandler
	BuildReport          BuildReportHandler
	ExportReport         ExportReportHandler
}

// Server translates HTTP requests into commands and queries. It holds no
// business logic: every decision is made by the use cases.
type Server struct {
	handlers Handlers
	location *time.Location
	logger   *slog.Logger
}

// NewServer creates the HTTP server. loc is the kitchen time zone used to
// interpret report dates.
func NewServer(handlers Handlers, loc *time.Location, logger *slog.Logger) *Server {
	if loc == nil {
		loc = time.UTC
	}
	return &Server{
		handlers: handlers,
		location: loc,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	items := make([]commands.CartItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.CartItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(
		items,
		commands.CustomerInfo{Name: req.CustomerName, Phone: req.CustomerPhone, Email: req.CustomerEmail},
		req.OrderType,
		req.Priority,
		order.Extras{SpecialInstructions: req.SpecialInstructions, DeliveryAddress: req.DeliveryAddress},
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(o)))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.getOrder(ctx, query)
}

// GetOrderByCode handles GET /api/orders/code/:code.
func (s *Server) GetOrderByCode(ctx echo.Context) error {
	query, err := queries.NewGetOrderByCodeQuery(ctx.Param("code"))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.getOrder(ctx, query)
}

func (s *Server) getOrder(ctx echo.Context, query queries.GetOrderQuery) error {
	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetActiveOrders handles GET /api/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewListActiveOrdersQuery())
}

// GetOrdersByStatus handles GET /api/orders?status=READY,COMPLETED. The
// status parameter may also be repeated.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	var statuses []string
	for _, v := range ctx.QueryParams()["status"] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				statuses = append(statuses, part)
			}
		}
	}

	query, err := queries.NewListOrdersByStatusQuery(statuses...)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listOrders(ctx, query)
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	list, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(list))
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status. Clients get a
// single winner among concurrent updates only by sending expectedStatus; see
// UpdateStatusRequest.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	var cmd commands.UpdateOrderStatusCommand
	if req.ExpectedStatus != "" {
		cmd, err = commands.NewUpdateOrderStatusFromCommand(id, req.ExpectedStatus, req.Status)
	} else {
		cmd, err = commands.NewUpdateOrderStatusCommand(id, req.Status)
	}
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.updateStatus(ctx, cmd)
}

// CompleteOrder handles PATCH /api/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.updateStatus(ctx, cmd)
}

func (s *Server) updateStatus(ctx echo.Context, cmd commands.UpdateOrderStatusCommand) error {
	o, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// AddLineItem handles POST /api/orders/:id/items.
func (s *Server) AddLineItem(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req AddLineItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddLineItemCommand(id, req.MenuItemID, req.Quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.handlers.AddLineItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// ChangeLineItemStatus handles PATCH /api/orders/:id/items/:itemId/status.
func (s *Server) ChangeLineItemStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req LineItemStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeLineItemStatusCommand(id, itemID, req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.handlers.ChangeLineItemStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// GetReport handles GET /api/reports/:type with daily, weekly, custom and
// monthly types.
func (s *Server) GetReport(ctx echo.Context) error {
	query, err := s.reportQuery(ctx, ctx.Param("type"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	rep, err := s.handlers.BuildReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReport(rep))
}

// DownloadReport handles GET /api/reports/download/:type?format=pdf|csv.
func (s *Server) DownloadReport(ctx echo.Context) error {
	reportQuery, err := s.reportQuery(ctx, ctx.Param("type"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	format := ctx.QueryParam("format")
	if format == "" {
		format = string(report.PDF)
	}
	query, err := queries.NewExportReportQuery(reportQuery, format)
	if err != nil {
		return s.writeError(ctx, err)
	}

	file, err := s.handlers.ExportReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+file.FileName)
	return ctx.Blob(http.StatusOK, file.ContentType, file.Content)
}

func (s *Server) reportQuery(ctx echo.Context, kind string) (queries.BuildReportQuery, error) {
	switch report.Kind(kind) {
	case report.Daily:
		return queries.NewDailyReportQuery(ctx.QueryParam("date"), s.location)
	case report.Weekly:
		return queries.NewWeeklyReportQuery(ctx.QueryParam("startDate"), ctx.QueryParam("endDate"), s.location)
	case report.Custom:
		return queries.NewCustomReportQuery(ctx.QueryParam("startDate"), ctx.QueryParam("endDate"), s.location)
	case report.Monthly:
		year, yearErr := strconv.Atoi(ctx.QueryParam("year"))
		if yearErr != nil {
			return queries.BuildReportQuery{}, errs.NewValueIsInvalidErrorWithCause("year", yearErr)
		}
		month, monthErr := strconv.Atoi(ctx.QueryParam("month"))
		if monthErr != nil {
			return queries.BuildReportQuery{}, errs.NewValueIsInvalidErrorWithCause("month", monthErr)
		}
		return queries.NewMonthlyReportQuery(year, month, s.location)
	default:
		return queries.BuildReportQuery{}, errs.NewObjectNotFoundError("report type", kind)
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
