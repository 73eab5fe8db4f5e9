package ports

import (
	"context"

	"kitchen/internal/core/domain/model/menu"
)

// MenuCatalog resolves menu item ids. It is read-only for the kitchen core.
type MenuCatalog interface {
	// Resolve returns errs.ObjectNotFoundError for unknown ids.
	Resolve(ctx context.Context, menuItemID int64) (menu.Item, error)
}
