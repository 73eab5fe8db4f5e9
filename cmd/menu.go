package cmd

import (
	"context"

	"kitchen/internal/adapters/out/postgres/menurepo"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
)

type menuEntry struct {
	id       int64
	name     string
	price    string
	category menu.Category
}

var defaultMenu = []menuEntry{
	{1, "Margherita Pizza", "12.99", menu.Pizza},
	{2, "Pepperoni Pizza", "14.49", menu.Pizza},
	{3, "Classic Burger", "8.50", menu.Burgers},
	{4, "Cheese Burger", "9.50", menu.Burgers},
	{5, "Caesar Salad", "7.25", menu.Salads},
	{6, "Chicken Wrap", "6.99", menu.Wraps},
	{7, "French Fries", "3.49", menu.Sides},
	{8, "Cola", "1.99", menu.Beverages},
	{9, "Chocolate Cake", "4.75", menu.Desserts},
	{10, "Garlic Bread", "3.99", menu.Appetizers},
}

// DefaultMenu is a small demo catalog for local runs.
func DefaultMenu() ([]menu.Item, error) {
	items := make([]menu.Item, 0, len(defaultMenu))
	for _, e := range defaultMenu {
		price, err := kernel.MoneyFromString(e.price)
		if err != nil {
			return nil, err
		}
		item, err := menu.NewItem(e.id, e.name, price, e.category)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// SeedMenu inserts the demo catalog; rows that already exist are left alone.
func (c *CompositionRoot) SeedMenu(ctx context.Context) error {
	items, err := DefaultMenu()
	if err != nil {
		return err
	}
	return menurepo.NewGormMenuCatalog(c.gormDB).Seed(ctx, items...)
}
