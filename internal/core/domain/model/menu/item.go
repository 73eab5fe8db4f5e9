package menu

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem constructor")

type Category string

const (
	Pizza      Category = "PIZZA"
	Burgers    Category = "BURGERS"
	Salads     Category = "SALADS"
	Wraps      Category = "WRAPS"
	Sides      Category = "SIDES"
	Beverages  Category = "BEVERAGES"
	Desserts   Category = "DESSERTS"
	Appetizers Category = "APPETIZERS"
	Starter    Category = "STARTER"
	Drink      Category = "DRINK"
)

func categories() map[Category]struct{} {
	return map[Category]struct{}{
		Pizza: {}, Burgers: {}, Salads: {}, Wraps: {}, Sides: {},
		Beverages: {}, Desserts: {}, Appetizers: {}, Starter: {}, Drink: {},
	}
}

// ParseCategory accepts category names in any letter case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := categories()[c]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a menu category", s))
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

// Item is a resolved catalog entry. Its price is what a new line item snapshots.
type Item struct {
	id       int64
	name     string
	price    kernel.Money
	category Category

	guard guard.ConstructorGuard
}

func NewItem(id int64, name string, price kernel.Money, category Category) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if id <= 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("menu item id", id, 1, "max int64")
	}
	if strings.TrimSpace(name) == "" {
		return Item{}, errs.NewValueIsRequiredError("menu item name")
	}
	if _, ok := categories()[category]; !ok {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a menu category", category))
	}

	item.id = id
	item.name = name
	item.price = price
	item.category = category
	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() int64 {
	return i.id
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() kernel.Money {
	return i.price
}

func (i Item) Category() Category {
	return i.category
}
