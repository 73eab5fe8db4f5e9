package postgres

import (
	"context"
	"fmt"

	"kitchen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderCodeSequence numbers human order codes.
const OrderCodeSequence = "order_code_seq"

// SequenceCodeGenerator draws order codes from a PostgreSQL sequence. nextval
// is not rolled back with the calling transaction, so aborted placements leave
// gaps but never reuse a number.
type SequenceCodeGenerator struct {
	db *gorm.DB
}

func NewSequenceCodeGenerator(db *gorm.DB) *SequenceCodeGenerator {
	return &SequenceCodeGenerator{db: db}
}

func (g *SequenceCodeGenerator) Next(ctx context.Context) (order.Code, error) {
	var n int64
	if err := g.db.WithContext(ctx).Raw("SELECT nextval(?::regclass)", OrderCodeSequence).Scan(&n).Error; err != nil {
		return "", fmt.Errorf("nextval %s: %w", OrderCodeSequence, err)
	}
	return order.CodeFromNumber(n)
}
