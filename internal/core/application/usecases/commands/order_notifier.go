package commands

import (
	"context"
	"log/slog"
	"time"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// DefaultOrdersTopic is where order lifecycle events are published.
const DefaultOrdersTopic = "orders"

// OrderEventMessage is the payload live displays receive for each order event.
type OrderEventMessage struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to,omitempty"`
	LineItemID  string    `json:"lineItemId,omitempty"`
	TotalAmount string    `json:"totalAmount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// OrderNotifier publishes the events an order recorded. It must only be
// called after the transaction that produced them has committed. Publish
// failures are logged and swallowed: a committed order stays committed.
type OrderNotifier struct {
	broadcaster ports.Broadcaster
	topic       string
	logger      *slog.Logger
}

func NewOrderNotifier(broadcaster ports.Broadcaster, topic string, logger *slog.Logger) *OrderNotifier {
	if topic == "" {
		topic = DefaultOrdersTopic
	}
	return &OrderNotifier{
		broadcaster: broadcaster,
		topic:       topic,
		logger:      logger.With("component", "order_notifier"),
	}
}

// Notify drains o's recorded events and publishes each of them.
func (n *OrderNotifier) Notify(ctx context.Context, o *order.Order) {
	if n == nil || n.broadcaster == nil {
		return
	}

	for _, e := range o.PullEvents() {
		msg := OrderEventMessage{
			Type:        string(e.Kind),
			OrderID:     o.ID().String(),
			OrderNumber: o.Code().String(),
			Status:      o.Status().String(),
			From:        e.From,
			To:          e.To,
			TotalAmount: o.TotalAmount().String(),
			OccurredAt:  e.OccurredAt,
		}
		if e.LineItemID != nil {
			msg.LineItemID = e.LineItemID.String()
		}

		if err := n.broadcaster.Publish(ctx, n.topic, msg); err != nil {
			n.logger.WarnContext(ctx, "Order event broadcast failed",
				"order_id", msg.OrderID, "type", msg.Type, "error", err)
		}
	}
}
