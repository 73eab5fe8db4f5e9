package commands_test

import (
	"context"
	"sync"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	args := m.Called(ctx, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByOrderTimeRange(ctx context.Context, from, until time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, until)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) Resolve(ctx context.Context, id int64) (menu.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(menu.Item)
	return item, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) MenuCatalog() ports.MenuCatalog {
	args := m.Called()
	return args.Get(0).(ports.MenuCatalog)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// recordingBroadcaster keeps every published message. When committed is set
// it also captures whether the unit of work had committed at publish time.
type recordingBroadcaster struct {
	mu          sync.Mutex
	messages    []commands.OrderEventMessage
	topics      []string
	err         error
	committed   *bool
	afterCommit []bool
}

func (b *recordingBroadcaster) Publish(_ context.Context, topic string, payload any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.topics = append(b.topics, topic)
	if msg, ok := payload.(commands.OrderEventMessage); ok {
		b.messages = append(b.messages, msg)
	}
	if b.committed != nil {
		b.afterCommit = append(b.afterCommit, *b.committed)
	}
	return b.err
}

type sequenceCodes struct {
	codes []order.Code
	next  int
}

func (s *sequenceCodes) Next(context.Context) (order.Code, error) {
	code := s.codes[s.next%len(s.codes)]
	s.next++
	return code, nil
}

type failingCodes struct{ err error }

func (f failingCodes) Next(context.Context) (order.Code, error) {
	return "", f.err
}

var placedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func mustMenuItem(id int64, name, price string) menu.Item {
	p, err := kernel.MoneyFromString(price)
	if err != nil {
		panic(err)
	}
	item, err := menu.NewItem(id, name, p, menu.Burgers)
	if err != nil {
		panic(err)
	}
	return item
}

func pendingOrder(lines ...order.CartLine) *order.Order {
	c, err := order.NewCustomer("Ann", "", "")
	if err != nil {
		panic(err)
	}
	if len(lines) == 0 {
		lines = []order.CartLine{{Item: mustMenuItem(1, "Burger", "8.50"), Quantity: 1}}
	}
	o, err := order.NewOrder(kernel.NewUUID(), "O000042", c, order.Pickup, order.Normal, lines, order.Extras{}, placedAt)
	if err != nil {
		panic(err)
	}
	o.PullEvents()
	return o
}
