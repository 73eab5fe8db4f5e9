package commands

import (
	"context"

	"kitchen/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuCatalogFactory interface {
		MenuCatalog() ports.MenuCatalog
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuCatalogFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
