// Package menurepo reads the menu catalog from the menu_items table.
package menurepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuItemDTO is one row of menu_items. The table is maintained outside the
// kitchen core; Available=false hides an item from new orders.
type MenuItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category  string          `gorm:"type:varchar(32);not null"`
	Available bool            `gorm:"not null;default:true"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// FromDomain is used to seed the catalog.
func FromDomain(item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:        item.ID(),
		Name:      item.Name(),
		Price:     item.Price().Amount(),
		Category:  item.Category().String(),
		Available: true,
	}
}

func toDomain(dto MenuItemDTO) (menu.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}

	category, err := menu.ParseCategory(dto.Category)
	if err != nil {
		return menu.Item{}, err
	}

	return menu.NewItem(dto.ID, dto.Name, price, category)
}
