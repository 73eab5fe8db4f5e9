package queries_test

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/report"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	args := m.Called(ctx, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) FindByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) FindByOrderTimeRange(ctx context.Context, from, until time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, until)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockReportRenderer struct{ mock.Mock }

func (m *MockReportRenderer) Render(format report.Format, rep report.Report) ([]byte, error) {
	args := m.Called(format, rep)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func newOrder(placed time.Time, name, price string, qty int) *order.Order {
	p, err := kernel.MoneyFromString(price)
	if err != nil {
		panic(err)
	}
	item, err := menu.NewItem(1, name, p, menu.Pizza)
	if err != nil {
		panic(err)
	}
	c, err := order.NewCustomer("Ann", "555-0100", "ann@example.com")
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), "O000777", c, order.DineIn, order.High,
		[]order.CartLine{{Item: item, Quantity: qty}}, order.Extras{SpecialInstructions: "extra cheese"}, placed)
	if err != nil {
		panic(err)
	}
	return o
}
