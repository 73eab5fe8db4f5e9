package order

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/pkg/errs"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created through an Order or RestoreLineItem")

// LineItem is one row of an order. Name and unit price are snapshots taken
// from the menu when the line was added and are never re-priced.
type LineItem struct {
	id         kernel.UUID
	menuItemID int64
	name       string
	quantity   int
	unitPrice  kernel.Money
	status     ItemStatus
	position   int

	isConstructed bool
}

// CartLine is a requested menu item with its quantity, as submitted by a client.
type CartLine struct {
	Item     menu.Item
	Quantity int
}

func newLineItem(item menu.Item, quantity, position int) (LineItem, error) {
	if err := item.Validate(); err != nil {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("menu item", err)
	}
	if err := validateQuantity(quantity); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:            kernel.NewUUID(),
		menuItemID:    item.ID(),
		name:          item.Name(),
		quantity:      quantity,
		unitPrice:     item.Price(),
		status:        ItemPending,
		position:      position,
		isConstructed: true,
	}, nil
}

// RestoreLineItem rebuilds a persisted line item.
func RestoreLineItem(
	id kernel.UUID,
	menuItemID int64,
	name string,
	quantity int,
	unitPrice kernel.Money,
	status ItemStatus,
	position int,
) (LineItem, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("line item name")
	}

	if err := errors.Join(
		id.Validate(),
		nameErr,
		validateQuantity(quantity),
		status.Validate(),
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:            id,
		menuItemID:    menuItemID,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		status:        status,
		position:      position,
		isConstructed: true,
	}, nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func (l LineItem) Validate() error {
	if !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (l LineItem) ID() kernel.UUID {
	return l.id
}

func (l LineItem) MenuItemID() int64 {
	return l.menuItemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l LineItem) Status() ItemStatus {
	return l.status
}

// Position is the zero-based index of the line in submission order.
func (l LineItem) Position() int {
	return l.position
}

// Subtotal is unitPrice × quantity, unrounded.
func (l LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}
