package commands

import (
	"context"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	notifier   *OrderNotifier
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	notifier *OrderNotifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle applies the transition under a row lock. Two concurrent updates of
// the same order are serialized; the second one is evaluated against the
// status the first one committed, and against its expected status if set.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := mutateLocked(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if cmd.Expected() != order.Unknown {
			return o.TransitionFrom(cmd.Expected(), cmd.Target(), h.clock.Now())
		}
		return o.TransitionTo(cmd.Target(), h.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, o)
	return o, nil
}

// mutateLocked loads the order FOR UPDATE, applies mutate and persists the
// result in one transaction. Nothing is written when mutate fails.
func mutateLocked(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(o *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = mutate(o); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
