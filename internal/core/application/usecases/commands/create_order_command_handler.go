package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
)

// MaxCreateOrderAttempts bounds how often placement is retried after a human
// code collision, e.g. a sequence reset below existing codes. Every attempt is
// a fresh transaction with a fresh code.
const MaxCreateOrderAttempts = 5

type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	codes      order.CodeGenerator
	clock      kernel.Clock
	notifier   *OrderNotifier
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	codes order.CodeGenerator,
	clock kernel.Clock,
	notifier *OrderNotifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		clock:      clock,
		notifier:   notifier,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle places the order and, once committed, broadcasts "created".
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		o, err := h.place(ctx, cmd)
		if err == nil {
			h.notifier.Notify(ctx, o)
			return o, nil
		}

		if !errors.Is(err, errs.ErrConflict) || attempt >= MaxCreateOrderAttempts {
			return nil, err
		}
		h.logger.WarnContext(ctx, "Order code collision, retrying", "attempt", attempt, "error", err)
	}
}

func (h *CreateOrderCommandHandler) place(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.MenuCatalog()
	lines := make([]order.CartLine, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		resolved, err := catalog.Resolve(ctx, item.MenuItemID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, order.CartLine{Item: resolved, Quantity: item.Quantity})
	}

	code, err := h.codes.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next order code: %w", err)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		code,
		cmd.Customer(),
		cmd.OrderType(),
		cmd.Priority(),
		lines,
		cmd.Extras(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, fmt.Errorf("add order: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
