package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotifier(b *recordingBroadcaster) *commands.OrderNotifier {
	return commands.NewOrderNotifier(b, "", slog.New(slog.DiscardHandler))
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should parse status case-insensitively", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), "preparing")

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, cmd.Target())
	})

	t.Run("should reject unknown status and missing id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, "cooking")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should carry an expected status", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusFromCommand(kernel.NewUUID(), "pending", "cancelled")

		require.NoError(t, err)
		assert.Equal(t, order.Pending, cmd.Expected())
		assert.Equal(t, order.Cancelled, cmd.Target())

		_, err = commands.NewUpdateOrderStatusFromCommand(kernel.NewUUID(), "waiting", "cancelled")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("complete shortcut targets COMPLETED", func(t *testing.T) {
		cmd, err := commands.NewCompleteOrderCommand(kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, order.Completed, cmd.Target())
	})
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder()
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "PREPARING")
	require.NoError(t, err)

	committed := false
	b := &recordingBroadcaster{committed: &committed}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Run(func(mock.Arguments) { committed = true }).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	clock := kernel.NewFixedClock(placedAt.Add(5 * time.Minute))
	h := commands.NewUpdateOrderStatusCommandHandler(factory, clock, newNotifier(b))
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())
	assert.Equal(t, clock.Now(), updated.UpdatedAt())
	require.Len(t, b.messages, 1)
	assert.Equal(t, "status-changed", b.messages[0].Type)
	assert.Equal(t, "PENDING", b.messages[0].From)
	assert.Equal(t, "PREPARING", b.messages[0].To)
	assert.Equal(t, []bool{true}, b.afterCommit)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder()
	cmd, err := commands.NewCompleteOrderCommand(o.ID())
	require.NoError(t, err)
	b := &recordingBroadcaster{}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, kernel.NewFixedClock(placedAt), newNotifier(b))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, o.Status())
	repo.AssertNotCalled(t, "Update", ctx, o)
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, b.messages)
}

func TestUpdateOrderStatusCommandHandler_Handle_StaleExpectation(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder()
	require.NoError(t, o.TransitionTo(order.Preparing, placedAt))
	o.PullEvents()
	cmd, err := commands.NewUpdateOrderStatusFromCommand(o.ID(), "PENDING", "CANCELLED")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, kernel.NewFixedClock(placedAt), nil)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Preparing, o.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, "READY")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, kernel.NewFixedClock(placedAt), nil)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder()
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "CANCELLED")
	require.NoError(t, err)
	b := &recordingBroadcaster{}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(errors.New("db down")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, kernel.NewFixedClock(placedAt), newNotifier(b))
	_, err = h.Handle(ctx, cmd)

	require.ErrorContains(t, err, "db down")
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, b.messages)
}

func TestUpdateOrderStatusCommandHandler_Handle_ReadyTimeStampedOnce(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder()
	require.NoError(t, o.TransitionTo(order.Preparing, placedAt))
	o.PullEvents()

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil)
	repo.On("Update", ctx, o).Return(nil)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	clock := kernel.NewFixedClock(placedAt.Add(10 * time.Minute))
	h := commands.NewUpdateOrderStatusCommandHandler(factory, clock, nil)

	ready, err := commands.NewUpdateOrderStatusCommand(o.ID(), "READY")
	require.NoError(t, err)
	_, err = h.Handle(ctx, ready)
	require.NoError(t, err)
	readyAt := *o.ReadyTime()

	clock.Advance(5 * time.Minute)
	complete, err := commands.NewCompleteOrderCommand(o.ID())
	require.NoError(t, err)
	_, err = h.Handle(ctx, complete)
	require.NoError(t, err)

	assert.Equal(t, readyAt, *o.ReadyTime())
	assert.Equal(t, clock.Now(), *o.CompletedTime())
	assert.Equal(t, order.Completed, o.Status())
}
