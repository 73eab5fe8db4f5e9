package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns errs.ObjectNotFoundError when nothing matches.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var (
		o   *order.Order
		err error
	)
	if query.ByCode() {
		o, err = h.orders.GetByCode(ctx, query.Code())
	} else {
		o, err = h.orders.Get(ctx, query.ID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}
