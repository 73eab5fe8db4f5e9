package queries

import (
	"time"

	"kitchen/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order handed to the transport layer.
//
// Example:
//
//	o, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s %s %s\n", o.OrderNumber, o.Status, o.TotalAmount)
type OrderResponse struct {
	ID                  string
	OrderNumber         string
	CustomerName        string
	CustomerPhone       string
	CustomerEmail       string
	OrderType           string
	Status              string
	Priority            string
	TotalAmount         string
	SpecialInstructions string
	DeliveryAddress     string
	OrderTime           time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	ReadyTime           *time.Time
	CompletedTime       *time.Time
	Items               []LineItemResponse
}

// LineItemResponse is one line of an OrderResponse, in submission order.
type LineItemResponse struct {
	ID         string
	MenuItemID int64
	Name       string
	Quantity   int
	UnitPrice  string
	Subtotal   string
	Status     string
}

// NewOrderResponse flattens o. Amounts are formatted with two decimals.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItemResponse{
			ID:         item.ID().String(),
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().String(),
			Subtotal:   item.Subtotal().String(),
			Status:     item.Status().String(),
		})
	}

	customer := o.Customer()
	return OrderResponse{
		ID:                  o.ID().String(),
		OrderNumber:         o.Code().String(),
		CustomerName:        customer.Name(),
		CustomerPhone:       customer.Phone(),
		CustomerEmail:       customer.Email(),
		OrderType:           o.Type().String(),
		Status:              o.Status().String(),
		Priority:            o.Priority().String(),
		TotalAmount:         o.TotalAmount().String(),
		SpecialInstructions: o.SpecialInstructions(),
		DeliveryAddress:     o.DeliveryAddress(),
		OrderTime:           o.OrderTime(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		ReadyTime:           o.ReadyTime(),
		CompletedTime:       o.CompletedTime(),
		Items:               items,
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
