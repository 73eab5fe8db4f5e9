package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CartItem is one requested menu item.
type CartItem struct {
	MenuItemID int64
	Quantity   int
}

// CustomerInfo is the contact as submitted by the client.
type CustomerInfo struct {
	Name  string
	Phone string
	Email string
}

type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items     []CartItem
	customer  order.Customer
	orderType order.Type
	priority  order.Priority
	extras    order.Extras

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw cart. orderType and priority are
// parsed case-insensitively; an empty priority means NORMAL.
func NewCreateOrderCommand(
	items []CartItem,
	customer CustomerInfo,
	orderType string,
	priority string,
	extras order.Extras,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		extras: extras,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItems(items),
		cmd.setCustomer(customer),
		cmd.setOrderType(orderType),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c CreateOrderCommand) Extras() order.Extras {
	return c.extras
}

func (c *CreateOrderCommand) setItems(items []CartItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var errList []error
	for i, item := range items {
		if item.MenuItemID <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"menuItemId", fmt.Errorf("item %d: %d is not a menu item id", i, item.MenuItemID)))
		}
		if item.Quantity <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("item %d: %d is not greater than 0", i, item.Quantity)))
		}
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	c.items = append([]CartItem(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setCustomer(info CustomerInfo) error {
	customer, err := order.NewCustomer(info.Name, info.Phone, info.Email)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setOrderType(s string) error {
	t, err := order.ParseType(s)
	if err != nil {
		return err
	}
	c.orderType = t
	return nil
}

func (c *CreateOrderCommand) setPriority(s string) error {
	p, err := order.ParsePriority(s)
	if err != nil {
		return err
	}
	c.priority = p
	return nil
}
