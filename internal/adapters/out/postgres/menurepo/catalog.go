package menurepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuCatalog implements ports.MenuCatalog using GORM.
type GormMenuCatalog struct {
	db *gorm.DB
}

func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// Resolve returns errs.ObjectNotFoundError for unknown or unavailable items.
func (c *GormMenuCatalog) Resolve(ctx context.Context, menuItemID int64) (menu.Item, error) {
	var dto MenuItemDTO
	err := c.db.WithContext(ctx).First(&dto, "id = ? AND available", menuItemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.Item{}, errs.NewObjectNotFoundError("menuItemId", menuItemID)
		}
		return menu.Item{}, err
	}

	return toDomain(dto)
}

// Seed inserts items whose id is not taken yet. It is used to bootstrap a
// development database; existing rows are left untouched.
func (c *GormMenuCatalog) Seed(ctx context.Context, items ...menu.Item) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, FromDomain(item))
	}

	return c.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dtos).Error
}
