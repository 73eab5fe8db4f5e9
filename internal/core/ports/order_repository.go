package ports

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// together with their line items.
type OrderRepository interface {
	// Add persists a new order and its line items. A duplicate human code
	// is reported as errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, timestamps, total and the full set of line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id without locking.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by id and holds a row lock on it until
	// the surrounding transaction ends. Concurrent writers of the same order
	// queue behind the lock and then see the committed state.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order by its human code.
	GetByCode(ctx context.Context, code order.Code) (*order.Order, error)

	// FindByOrderTimeRange returns orders with from <= orderTime < until,
	// ascending by orderTime.
	FindByOrderTimeRange(ctx context.Context, from, until time.Time) ([]*order.Order, error)

	// FindByStatuses returns orders whose status is in statuses, ascending by orderTime.
	FindByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}
