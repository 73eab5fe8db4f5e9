package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBurgerCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand([]commands.CartItem{{MenuItemID: 1, Quantity: 2}},
		commands.CustomerInfo{Name: "Ann"}, "PICKUP", "", order.Extras{})
	require.NoError(t, err)
	return cmd
}

func newCreateHandler(
	factory commands.OrderUoWFactory,
	codes order.CodeGenerator,
	b *recordingBroadcaster,
) commands.CreateOrderCommandHandler {
	logger := slog.New(slog.DiscardHandler)
	notifier := commands.NewOrderNotifier(b, "", logger)
	return commands.NewCreateOrderCommandHandler(factory, codes, kernel.NewFixedClock(placedAt), notifier, logger)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newBurgerCommand(t)

	committed := false
	b := &recordingBroadcaster{committed: &committed}

	repo := new(MockOrderRepository)
	catalog := new(MockMenuCatalog)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuCatalog").Return(catalog).Once(),
		catalog.On("Resolve", ctx, int64(1)).Return(mustMenuItem(1, "Burger", "8.50"), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Run(func(mock.Arguments) { committed = true }).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, &sequenceCodes{codes: []order.Code{"O123456"}}, b)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, order.Normal, o.Priority())
	assert.Equal(t, order.Code("O123456"), o.Code())
	assert.Equal(t, "17.00", o.TotalAmount().String())
	require.Len(t, o.Items(), 1)
	assert.Equal(t, "8.50", o.Items()[0].UnitPrice().String())
	assert.Equal(t, placedAt, o.OrderTime())
	assert.Equal(t, placedAt, o.CreatedAt())
	assert.Equal(t, placedAt, o.UpdatedAt())

	require.Len(t, b.messages, 1)
	assert.Equal(t, "created", b.messages[0].Type)
	assert.Equal(t, "17.00", b.messages[0].TotalAmount)
	assert.Equal(t, commands.DefaultOrdersTopic, b.topics[0])
	assert.Equal(t, []bool{true}, b.afterCommit)

	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := newCreateHandler(factory, order.NewCounterCodeGenerator(0), &recordingBroadcaster{})

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd := newBurgerCommand(t)
	b := &recordingBroadcaster{}

	catalog := new(MockMenuCatalog)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuCatalog").Return(catalog).Once(),
		catalog.On("Resolve", ctx, int64(1)).Return(menu.Item{}, errs.NewObjectNotFoundError("menuItemId", int64(1))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, order.NewCounterCodeGenerator(0), b)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, b.messages)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newBurgerCommand(t)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := newCreateHandler(factory, order.NewCounterCodeGenerator(0), &recordingBroadcaster{})
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnCodeConflict(t *testing.T) {
	ctx := t.Context()
	cmd := newBurgerCommand(t)
	b := &recordingBroadcaster{}
	burger := mustMenuItem(1, "Burger", "8.50")

	newAttempt := func(addErr error, commit bool) *MockOrderUoW {
		repo := new(MockOrderRepository)
		catalog := new(MockMenuCatalog)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("MenuCatalog").Return(catalog).Once()
		catalog.On("Resolve", ctx, int64(1)).Return(burger, nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(addErr).Once()
		if commit {
			uow.On("Commit", ctx).Return(nil).Once()
		}
		uow.On("Rollback", ctx).Return(nil).Once()
		return uow
	}

	first := newAttempt(errs.NewConflictError("humanCode", "O111111"), false)
	second := newAttempt(nil, true)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(first).Once()
	factory.On("Create").Return(second).Once()

	h := newCreateHandler(factory, &sequenceCodes{codes: []order.Code{"O111111", "O222222"}}, b)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Code("O222222"), o.Code())
	require.Len(t, b.messages, 1)
	assert.Equal(t, "O222222", b.messages[0].OrderNumber)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := t.Context()
	cmd := newBurgerCommand(t)
	b := &recordingBroadcaster{}

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errs.NewConflictError("humanCode", "O111111"))
	catalog := new(MockMenuCatalog)
	catalog.On("Resolve", ctx, int64(1)).Return(mustMenuItem(1, "Burger", "8.50"), nil)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("MenuCatalog").Return(catalog)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := newCreateHandler(factory, order.NewCounterCodeGenerator(0), b)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	factory.AssertNumberOfCalls(t, "Create", commands.MaxCreateOrderAttempts)
	repo.AssertNumberOfCalls(t, "Add", commands.MaxCreateOrderAttempts)
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, b.messages)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newBurgerCommand(t)
	b := &recordingBroadcaster{}

	repo := new(MockOrderRepository)
	catalog := new(MockMenuCatalog)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuCatalog").Return(catalog).Once(),
		catalog.On("Resolve", ctx, int64(1)).Return(mustMenuItem(1, "Burger", "8.50"), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, order.NewCounterCodeGenerator(0), b)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Empty(t, b.messages)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BroadcastFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd := newBurgerCommand(t)
	b := &recordingBroadcaster{err: errors.New("sink down")}

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	catalog := new(MockMenuCatalog)
	catalog.On("Resolve", ctx, int64(1)).Return(mustMenuItem(1, "Burger", "8.50"), nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuCatalog").Return(catalog).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, order.NewCounterCodeGenerator(0), b)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	assert.Len(t, b.topics, 1)
}

func TestCreateOrderCommandHandler_Handle_CodeSequenceError(t *testing.T) {
	ctx := t.Context()
	cmd := newBurgerCommand(t)
	b := &recordingBroadcaster{}
	sequenceErr := errors.New("sequence unavailable")

	repo := new(MockOrderRepository)
	catalog := new(MockMenuCatalog)
	catalog.On("Resolve", ctx, int64(1)).Return(mustMenuItem(1, "Burger", "8.50"), nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuCatalog").Return(catalog).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, failingCodes{err: sequenceErr}, b)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, sequenceErr)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, b.messages)
	uow.AssertExpectations(t)
}
