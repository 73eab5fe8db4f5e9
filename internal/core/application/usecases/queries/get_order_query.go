package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderByIDQuery or NewGetOrderByCodeQuery constructor",
	)
)

// GetOrderQuery looks up a single order either by id or by its human code.
type GetOrderQuery struct {
	id   kernel.UUID
	code order.Code

	guard guard.ConstructorGuard
}

func NewGetOrderByIDQuery(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrderByCodeQuery accepts codes like "O123456".
func NewGetOrderByCodeQuery(code string) (GetOrderQuery, error) {
	c, err := order.ParseCode(code)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{code: c, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ByCode reports whether the lookup goes through the human code.
func (q GetOrderQuery) ByCode() bool {
	return q.code != ""
}

func (q GetOrderQuery) ID() kernel.UUID {
	return q.id
}

func (q GetOrderQuery) Code() order.Code {
	return q.code
}
