package queries

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store. Implementations run
// outside any transaction and may retry transient failures.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetByCode(ctx context.Context, code order.Code) (*order.Order, error)
	FindByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
	FindByOrderTimeRange(ctx context.Context, from, until time.Time) ([]*order.Order, error)
}
