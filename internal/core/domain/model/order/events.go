package order

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
)

// EventKind names what happened to an order. The values are what live
// displays receive in the "type" field.
type EventKind string

const (
	EventCreated           EventKind = "created"
	EventStatusChanged     EventKind = "status-changed"
	EventItemsChanged      EventKind = "items-changed"
	EventItemStatusChanged EventKind = "item-status-changed"
)

// Event is recorded by the aggregate on every successful mutation and
// drained by the application layer once the transaction has committed.
type Event struct {
	Kind       EventKind
	OrderID    kernel.UUID
	From       string
	To         string
	LineItemID *kernel.UUID
	OccurredAt time.Time
}

func (o *Order) record(e Event) {
	e.OrderID = o.id
	o.events = append(o.events, e)
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}
