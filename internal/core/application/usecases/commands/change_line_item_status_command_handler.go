package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

type ChangeLineItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	notifier   *OrderNotifier
}

func NewChangeLineItemStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	notifier *OrderNotifier,
) ChangeLineItemStatusCommandHandler {
	return ChangeLineItemStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

func (h *ChangeLineItemStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeLineItemStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := mutateLocked(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ChangeLineItemStatus(cmd.LineItemID(), cmd.Target(), h.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, o)
	return o, nil
}
