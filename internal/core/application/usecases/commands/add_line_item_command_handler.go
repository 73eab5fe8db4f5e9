package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

type AddLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	notifier   *OrderNotifier
}

func NewAddLineItemCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	notifier *OrderNotifier,
) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	item, err := uow.MenuCatalog().Resolve(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	if err = o.AddLineItem(item, cmd.Quantity(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, o)
	return o, nil
}
