package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrChangeLineItemStatusCommandIsNotConstructed = errors.New(
		"ChangeLineItemStatusCommand must be created via NewChangeLineItemStatusCommand constructor",
	)
)

type ChangeLineItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineItemID kernel.UUID
	target     order.ItemStatus

	guard guard.ConstructorGuard
}

func NewChangeLineItemStatusCommand(
	orderID kernel.UUID,
	lineItemID kernel.UUID,
	status string,
) (ChangeLineItemStatusCommand, error) {
	target, statusErr := order.ParseItemStatus(status)

	if err := errors.Join(orderID.Validate(), lineItemID.Validate(), statusErr); err != nil {
		return ChangeLineItemStatusCommand{}, err
	}

	return ChangeLineItemStatusCommand{
		orderID:    orderID,
		lineItemID: lineItemID,
		target:     target,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeLineItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeLineItemStatusCommandIsNotConstructed)
}

func (c ChangeLineItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeLineItemStatusCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c ChangeLineItemStatusCommand) Target() order.ItemStatus {
	return c.target
}
