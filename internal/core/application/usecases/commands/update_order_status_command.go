package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	target   order.Status
	expected order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand parses status case-insensitively.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// NewUpdateOrderStatusFromCommand only succeeds while the order is still in
// expected. Two racing requests that both saw PENDING therefore get exactly
// one winner.
func NewUpdateOrderStatusFromCommand(orderID kernel.UUID, expected, status string) (UpdateOrderStatusCommand, error) {
	from, fromErr := order.ParseStatus(expected)
	cmd, err := NewUpdateOrderStatusCommand(orderID, status)
	if err = errors.Join(err, fromErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.expected = from
	return cmd, nil
}

// NewCompleteOrderCommand is the COMPLETED shortcut.
func NewCompleteOrderCommand(orderID kernel.UUID) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(orderID, order.Completed.String())
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Expected is order.Unknown when the transition is unconditional.
func (c UpdateOrderStatusCommand) Expected() order.Status {
	return c.expected
}

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(s string) error {
	status, err := order.ParseStatus(s)
	if err != nil {
		return err
	}
	c.target = status
	return nil
}
