package http_test

import (
	"context"
	"log/slog"
	"time"

	kitchenhttp "kitchen/internal/adapters/in/http"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/report"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAddLineItemHandler struct{ mock.Mock }

func (m *MockAddLineItemHandler) Handle(ctx context.Context, cmd commands.AddLineItemCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockChangeLineItemStatusHandler struct{ mock.Mock }

func (m *MockChangeLineItemStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeLineItemStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderResponse), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]queries.OrderResponse)
	return list, args.Error(1)
}

type MockBuildReportHandler struct{ mock.Mock }

func (m *MockBuildReportHandler) Handle(ctx context.Context, query queries.BuildReportQuery) (report.Report, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(report.Report), args.Error(1)
}

type MockExportReportHandler struct{ mock.Mock }

func (m *MockExportReportHandler) Handle(
	ctx context.Context,
	query queries.ExportReportQuery,
) (queries.ExportReportResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ExportReportResponse), args.Error(1)
}

type testServer struct {
	echo *echo.Echo

	create       *MockCreateOrderHandler
	updateStatus *MockUpdateOrderStatusHandler
	addItem      *MockAddLineItemHandler
	itemStatus   *MockChangeLineItemStatusHandler
	getOrder     *MockGetOrderHandler
	listOrders   *MockListOrdersHandler
	buildReport  *MockBuildReportHandler
	exportReport *MockExportReportHandler
}

func newTestServer(cfg kitchenhttp.RouterConfig) *testServer {
	ts := &testServer{
		create:       new(MockCreateOrderHandler),
		updateStatus: new(MockUpdateOrderStatusHandler),
		addItem:      new(MockAddLineItemHandler),
		itemStatus:   new(MockChangeLineItemStatusHandler),
		getOrder:     new(MockGetOrderHandler),
		listOrders:   new(MockListOrdersHandler),
		buildReport:  new(MockBuildReportHandler),
		exportReport: new(MockExportReportHandler),
	}

	server := kitchenhttp.NewServer(kitchenhttp.Handlers{
		CreateOrder:          ts.create,
		UpdateOrderStatus:    ts.updateStatus,
		AddLineItem:          ts.addItem,
		ChangeLineItemStatus: ts.itemStatus,
		GetOrder:             ts.getOrder,
		ListOrders:           ts.listOrders,
		BuildReport:          ts.buildReport,
		ExportReport:         ts.exportReport,
	}, time.UTC, slog.New(slog.DiscardHandler))
	ts.echo = kitchenhttp.NewRouter(server, cfg)
	return ts
}

var placedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func burgerOrder() *order.Order {
	price, err := kernel.MoneyFromString("8.50")
	if err != nil {
		panic(err)
	}
	burger, err := menu.NewItem(1, "Burger", price, menu.Burgers)
	if err != nil {
		panic(err)
	}
	c, err := order.NewCustomer("Ann", "", "")
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), "O123456", c, order.Pickup, order.Normal,
		[]order.CartLine{{Item: burger, Quantity: 2}}, order.Extras{}, placedAt)
	if err != nil {
		panic(err)
	}
	return o
}
