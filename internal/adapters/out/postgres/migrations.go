package postgres

import (
	"kitchen/internal/adapters/out/postgres/menurepo"
	"kitchen/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates menu_items, orders and order_items, including
// the unique index on orders.human_code, and the sequence behind human codes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&menurepo.MenuItemDTO{}, &orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}); err != nil {
		return err
	}
	return db.Exec("CREATE SEQUENCE IF NOT EXISTS " + OrderCodeSequence + " AS bigint MINVALUE 1").Error
}
