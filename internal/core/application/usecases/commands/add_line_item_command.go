package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrAddLineItemCommandIsNotConstructed = errors.New(
		"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
	)
)

type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	menuItemID int64
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddLineItemCommand(orderID kernel.UUID, menuItemID int64, quantity int) (AddLineItemCommand, error) {
	var idErr, qtyErr error
	if menuItemID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("menuItemId", fmt.Errorf("%d is not a menu item id", menuItemID))
	}
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(orderID.Validate(), idErr, qtyErr); err != nil {
		return AddLineItemCommand{}, err
	}

	return AddLineItemCommand{
		orderID:    orderID,
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddLineItemCommand) MenuItemID() int64 {
	return c.menuItemID
}

func (c AddLineItemCommand) Quantity() int {
	return c.quantity
}
