package http

import (
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/report"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CartItemRequest struct {
	MenuItemID int64 `json:"menuItemId" validate:"required,gt=0"`
	Quantity   int   `json:"quantity"   validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerName        string            `json:"customerName"        validate:"required,max=100"`
	CustomerPhone       string            `json:"customerPhone"       validate:"omitempty,max=30"`
	CustomerEmail       string            `json:"customerEmail"       validate:"omitempty,email"`
	OrderType           string            `json:"orderType"           validate:"required"`
	Priority            string            `json:"priority"`
	SpecialInstructions string            `json:"specialInstructions" validate:"max=500"`
	DeliveryAddress     string            `json:"deliveryAddress"     validate:"max=255"`
	Items               []CartItemRequest `json:"items"               validate:"required,min=1,dive"`
}

// UpdateStatusRequest moves an order. When ExpectedStatus is set the update
// only applies if the order is still in that status, otherwise it fails with
// 409. Display clients should always send the status they are showing: of two
// stations acting on the same PENDING order (one starts it, one cancels it)
// only one then wins. Without it both succeed one after the other, because
// PREPARING to CANCELLED is a legal move.
type UpdateStatusRequest struct {
	Status         string `json:"status"         validate:"required"`
	ExpectedStatus string `json:"expectedStatus"`
}

type AddLineItemRequest struct {
	MenuItemID int64 `json:"menuItemId" validate:"required,gt=0"`
	Quantity   int   `json:"quantity"   validate:"required,gt=0"`
}

type LineItemStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type LineItem struct {
	ID         string `json:"id"`
	MenuItemID int64  `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
	Subtotal   string `json:"subtotal"`
	Status     string `json:"status"`
}

type Order struct {
	ID                  string     `json:"id"`
	OrderNumber         string     `json:"orderNumber"`
	CustomerName        string     `json:"customerName"`
	CustomerPhone       string     `json:"customerPhone,omitempty"`
	CustomerEmail       string     `json:"customerEmail,omitempty"`
	OrderType           string     `json:"orderType"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	TotalAmount         string     `json:"totalAmount"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
	DeliveryAddress     string     `json:"deliveryAddress,omitempty"`
	OrderTime           time.Time  `json:"orderTime"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
	ReadyTime           *time.Time `json:"readyTime,omitempty"`
	CompletedTime       *time.Time `json:"completedTime,omitempty"`
	Items               []LineItem `json:"items"`
}

func toOrder(o queries.OrderResponse) Order {
	items := make([]LineItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = LineItem{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
			Status:     item.Status,
		}
	}

	return Order{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		CustomerName:        o.CustomerName,
		CustomerPhone:       o.CustomerPhone,
		CustomerEmail:       o.CustomerEmail,
		OrderType:           o.OrderType,
		Status:              o.Status,
		Priority:            o.Priority,
		TotalAmount:         o.TotalAmount,
		SpecialInstructions: o.SpecialInstructions,
		DeliveryAddress:     o.DeliveryAddress,
		OrderTime:           o.OrderTime,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
		ReadyTime:           o.ReadyTime,
		CompletedTime:       o.CompletedTime,
		Items:               items,
	}
}

func toOrders(list []queries.OrderResponse) []Order {
	out := make([]Order, len(list))
	for i, o := range list {
		out[i] = toOrder(o)
	}
	return out
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  string `json:"revenue"`
}

type PeakHour struct {
	Hour   int    `json:"hour"`
	Label  string `json:"label"`
	Orders int    `json:"orders"`
}

type Report struct {
	Type              string        `json:"type"`
	StartDate         string        `json:"startDate"`
	EndDate           string        `json:"endDate"`
	TotalOrders       int           `json:"totalOrders"`
	TotalRevenue      string        `json:"totalRevenue"`
	AverageOrderValue string        `json:"averageOrderValue"`
	AvgPrepMinutes    string        `json:"avgPrepMinutes"`
	StatusCounts      []StatusCount `json:"statusCounts"`
	TopItems          []TopItem     `json:"topItems"`
	PeakHours         []PeakHour    `json:"peakHours"`
	GeneratedAt       time.Time     `json:"generatedAt"`
}

func toReport(rep report.Report) Report {
	counts := make([]StatusCount, len(rep.StatusCounts))
	for i, sc := range rep.StatusCounts {
		counts[i] = StatusCount{Status: sc.Status.String(), Count: sc.Count}
	}
	top := make([]TopItem, len(rep.TopItems))
	for i, item := range rep.TopItems {
		top[i] = TopItem{Name: item.Name, Quantity: item.Quantity, Revenue: item.Revenue.String()}
	}
	peaks := make([]PeakHour, len(rep.PeakHours))
	for i, ph := range rep.PeakHours {
		peaks[i] = PeakHour(ph)
	}

	return Report{
		Type:              string(rep.Kind),
		StartDate:         rep.Range.Start().Format(report.DateLayout),
		EndDate:           rep.Range.End().Format(report.DateLayout),
		TotalOrders:       rep.TotalOrders,
		TotalRevenue:      rep.TotalRevenue.String(),
		AverageOrderValue: rep.AverageOrderValue.String(),
		AvgPrepMinutes:    rep.AvgPrepMinutes.StringFixed(1),
		StatusCounts:      counts,
		TopItems:          top,
		PeakHours:         peaks,
		GeneratedAt:       rep.GeneratedAt,
	}
}
