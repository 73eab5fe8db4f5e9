// Package orderrepo maps the order aggregate and its line items onto the
// orders and order_items tables.
package orderrepo

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Enumerations are stored by name.
type OrderDTO struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	HumanCode           string              `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerName        string              `gorm:"type:varchar(255);not null"`
	CustomerPhone       string              `gorm:"type:varchar(64)"`
	CustomerEmail       string              `gorm:"type:varchar(255)"`
	OrderType           string              `gorm:"type:varchar(16);not null"`
	Status              string              `gorm:"type:varchar(16);not null;index"`
	Priority            string              `gorm:"type:varchar(16);not null"`
	TotalAmount         decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	OrderTime           time.Time           `gorm:"not null;index"`
	CreatedAt           time.Time           `gorm:"not null;autoCreateTime:false"`
	UpdatedAt           time.Time           `gorm:"not null;autoUpdateTime:false"`
	ReadyTime           *time.Time
	CompletedTime       *time.Time
	SpecialInstructions string        `gorm:"type:text"`
	DeliveryAddress     string        `gorm:"type:text"`
	Items               []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one row of order_items. Name and unit price are the
// snapshot taken when the line was added.
type LineItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID int64           `gorm:"not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status     string          `gorm:"type:varchar(16);not null"`
	Position   int             `gorm:"type:int;not null"`
}

func (LineItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]LineItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
			Status:     item.Status().String(),
			Position:   item.Position(),
		})
	}

	customer := o.Customer()
	return OrderDTO{
		ID:                  orderID,
		HumanCode:           o.Code().String(),
		CustomerName:        customer.Name(),
		CustomerPhone:       customer.Phone(),
		CustomerEmail:       customer.Email(),
		OrderType:           o.Type().String(),
		Status:              o.Status().String(),
		Priority:            o.Priority().String(),
		TotalAmount:         decimal.NewNullDecimal(o.TotalAmount().Amount()),
		OrderTime:           o.OrderTime(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		ReadyTime:           o.ReadyTime(),
		CompletedTime:       o.CompletedTime(),
		SpecialInstructions: o.SpecialInstructions(),
		DeliveryAddress:     o.DeliveryAddress(),
		Items:               items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	orderType, typeErr := order.ParseType(dto.OrderType)
	status, statusErr := order.ParseStatus(dto.Status)
	priority, priorityErr := order.ParsePriority(dto.Priority)
	if err = errors.Join(typeErr, statusErr, priorityErr); err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, fmt.Errorf("order %s: %w", dto.ID, itemErr)
		}
		items = append(items, item)
	}

	var total *kernel.Money
	if dto.TotalAmount.Valid {
		m, moneyErr := kernel.NewMoney(dto.TotalAmount.Decimal)
		if moneyErr != nil {
			return nil, moneyErr
		}
		total = &m
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                  id,
		Code:                order.Code(dto.HumanCode),
		Customer:            customer,
		Type:                orderType,
		Status:              status,
		Priority:            priority,
		Items:               items,
		TotalAmount:         total,
		OrderTime:           dto.OrderTime,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
		ReadyTime:           dto.ReadyTime,
		CompletedTime:       dto.CompletedTime,
		SpecialInstructions: dto.SpecialInstructions,
		DeliveryAddress:     dto.DeliveryAddress,
	})
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	status, err := order.ParseItemStatus(dto.Status)
	if err != nil {
		return order.LineItem{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(id, dto.MenuItemID, dto.Name, dto.Quantity, price, status, dto.Position)
}
