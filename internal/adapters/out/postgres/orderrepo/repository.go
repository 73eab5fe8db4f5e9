package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db           *gorm.DB
	readAttempts int
}

type Option func(*GormOrderRepository)

// WithReadRetries retries reads that hit a deadlock or serialization failure.
// Only use it for repositories that are not bound to a transaction: a failed
// statement aborts the surrounding transaction anyway.
func WithReadRetries(attempts int) Option {
	return func(r *GormOrderRepository) {
		r.readAttempts = attempts
	}
}

func NewGormOrderRepository(db *gorm.DB, opts ...Option) *GormOrderRepository {
	r := &GormOrderRepository{db: db, readAttempts: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add inserts the order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("humanCode", dto.HumanCode, err)
		}
		return err
	}

	return nil
}

// Update overwrites an existing order row and upserts its line items, so
// appended lines are inserted and existing ones get their status updated.
// It never inserts the order itself: an unknown id is ObjectNotFound.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	if len(items) == 0 {
		return nil
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&items).Error; err != nil {
		return fmt.Errorf("upsert line items: %w", err)
	}

	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.read(ctx, func(db *gorm.DB) error {
		return db.First(&dto, "id = ?", id.Bytes()).Error
	})
	if err != nil {
		return nil, notFound(err, "orderId", id.String())
	}

	return toDomain(dto)
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE. It must run
// inside a transaction for the lock to outlive the statement.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withItems(r.db.WithContext(ctx)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, notFound(err, "orderId", id.String())
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.read(ctx, func(db *gorm.DB) error {
		return db.First(&dto, "human_code = ?", code.String()).Error
	})
	if err != nil {
		return nil, notFound(err, "orderNumber", code.String())
	}

	return toDomain(dto)
}

// FindByOrderTimeRange returns orders with from <= order_time < until.
func (r *GormOrderRepository) FindByOrderTimeRange(
	ctx context.Context,
	from, until time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.read(ctx, func(db *gorm.DB) error {
		return db.
			Where("order_time >= ? AND order_time < ?", from, until).
			Order("order_time, id").
			Find(&dtos).Error
	})
	if err != nil {
		return nil, fmt.Errorf("find orders between %s and %s: %w", from, until, err)
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) FindByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	var dtos []OrderDTO
	err := r.read(ctx, func(db *gorm.DB) error {
		return db.
			Where("status IN ?", names).
			Order("order_time, id").
			Find(&dtos).Error
	})
	if err != nil {
		return nil, fmt.Errorf("find orders by status: %w", err)
	}

	return toDomainList(dtos)
}

// read runs an idempotent query with line items preloaded in position order.
func (r *GormOrderRepository) read(ctx context.Context, query func(db *gorm.DB) error) error {
	return pgerr.Retry(ctx, r.readAttempts, func() error {
		return query(r.withItems(r.db.WithContext(ctx)))
	})
}

func (r *GormOrderRepository) withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func notFound(err error, paramName, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return err
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
