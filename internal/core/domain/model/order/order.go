package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a kitchen order: its line items, the derived
// total and the lifecycle status with its timestamps.
//
// Order follows these invariants:
//   - Items are never empty
//   - totalAmount always equals the sum of unitPrice × quantity over items
//   - Status only moves along the edges of the transition table
//   - readyTime and completedTime are stamped once, on first entry to READY and COMPLETED
//   - id and code never change after construction
type Order struct {
	id       kernel.UUID
	code     Code
	customer Customer

	orderType Type
	status    Status
	priority  Priority

	// items keep submission order; position == index
	items       []LineItem
	totalAmount kernel.Money

	orderTime     time.Time
	createdAt     time.Time
	updatedAt     time.Time
	readyTime     *time.Time
	completedTime *time.Time

	specialInstructions string
	deliveryAddress     string

	events []Event

	isConstructed bool
}

// Extras are the optional free-text fields captured at placement.
type Extras struct {
	SpecialInstructions string
	DeliveryAddress     string
}

// NewOrder places a new order in PENDING status. Every line's price is
// snapshotted from the resolved menu item, and orderTime, createdAt and
// updatedAt are all set to now.
//
// Validation failures of the individual parameters are joined into one error.
func NewOrder(
	id kernel.UUID,
	code Code,
	customer Customer,
	orderType Type,
	priority Priority,
	lines []CartLine,
	extras Extras,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		orderTime:     now,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomer(customer),
		o.setType(orderType),
		o.setPriority(priority),
		o.setExtras(orderType, extras),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.RecomputeTotal()
	o.record(Event{Kind: EventCreated, To: o.status.String(), OccurredAt: now})
	return o, nil
}

// Snapshot is the persisted state of an order. A nil TotalAmount means the
// total was never stored and is recomputed from the items.
type Snapshot struct {
	ID                  kernel.UUID
	Code                Code
	Customer            Customer
	Type                Type
	Status              Status
	Priority            Priority
	Items               []LineItem
	TotalAmount         *kernel.Money
	OrderTime           time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	ReadyTime           *time.Time
	CompletedTime       *time.Time
	SpecialInstructions string
	DeliveryAddress     string
}

// RestoreOrder rebuilds an order loaded from storage. It records no events.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:              s.Status,
		orderTime:           s.OrderTime,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		readyTime:           copyTime(s.ReadyTime),
		completedTime:       copyTime(s.CompletedTime),
		specialInstructions: s.SpecialInstructions,
		deliveryAddress:     s.DeliveryAddress,
		isConstructed:       true,
	}

	var itemsErr error
	if len(s.Items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}
	for _, item := range s.Items {
		if err := item.Validate(); err != nil {
			itemsErr = errors.Join(itemsErr, err)
		}
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCode(s.Code),
		o.setCustomer(s.Customer),
		o.setType(s.Type),
		o.setPriority(s.Priority),
		s.Status.Validate(),
		itemsErr,
	); err != nil {
		return nil, err
	}

	o.items = append([]LineItem(nil), s.Items...)
	if s.TotalAmount != nil {
		o.totalAmount = *s.TotalAmount
	} else {
		o.RecomputeTotal()
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Code() Code {
	return o.code
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Priority() Priority {
	return o.priority
}

// Items returns a copy of the line items in submission order.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// LineItem looks up a line by id.
func (o *Order) LineItem(id kernel.UUID) (LineItem, bool) {
	for _, item := range o.items {
		if item.id.IsEqual(id) {
			return item, true
		}
	}
	return LineItem{}, false
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) ReadyTime() *time.Time {
	return copyTime(o.readyTime)
}

func (o *Order) CompletedTime() *time.Time {
	return copyTime(o.completedTime)
}

func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// AddLineItem appends a new line for a resolved menu item and recomputes the total.
// Only PENDING and PREPARING orders accept new lines.
func (o *Order) AddLineItem(item menu.Item, quantity int, now time.Time) error {
	if o.status != Pending && o.status != Preparing {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s orders cannot be amended", o.status),
		)
	}

	line, err := newLineItem(item, quantity, len(o.items))
	if err != nil {
		return err
	}

	o.items = append(o.items, line)
	o.RecomputeTotal()
	o.updatedAt = now
	o.record(Event{Kind: EventItemsChanged, To: o.status.String(), OccurredAt: now})
	return nil
}

// RecomputeTotal sets totalAmount to the exact sum of line subtotals. It is idempotent.
func (o *Order) RecomputeTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total
}

// TransitionTo moves the order to target when the transition table allows it.
// On failure the order is left untouched.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	from := o.status
	next, err := from.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	switch next {
	case Ready:
		if o.readyTime == nil {
			o.readyTime = &now
		}
	case Completed:
		if o.completedTime == nil {
			o.completedTime = &now
		}
	default:
	}
	o.updatedAt = now
	o.record(Event{Kind: EventStatusChanged, From: from.String(), To: next.String(), OccurredAt: now})
	return nil
}

// TransitionFrom is TransitionTo guarded by the status the caller last saw.
// When the order has moved on since, the request fails with
// InvalidTransitionError even if target is reachable from the new status.
func (o *Order) TransitionFrom(expected, target Status, now time.Time) error {
	if err := expected.Validate(); err != nil {
		return err
	}
	if o.status != expected {
		return errs.NewInvalidTransitionErrorWithCause(
			"order", o.status.String(), target.String(),
			fmt.Errorf("expected order to be %s", expected),
		)
	}
	return o.TransitionTo(target, now)
}

// ChangeLineItemStatus advances one line item. Line statuses only move
// forward, and lines of a COMPLETED or CANCELLED order are frozen.
func (o *Order) ChangeLineItemStatus(lineItemID kernel.UUID, target ItemStatus, now time.Time) error {
	idx := -1
	for i := range o.items {
		if o.items[i].id.IsEqual(lineItemID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errs.NewObjectNotFoundError("lineItemId", lineItemID.String())
	}

	current := o.items[idx].status
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			"line item", current.String(), target.String(),
			fmt.Errorf("order is %s", o.status),
		)
	}

	next, err := current.TransitionTo(target)
	if err != nil {
		return err
	}

	o.items[idx].status = next
	o.updatedAt = now
	o.record(Event{
		Kind:       EventItemStatusChanged,
		From:       current.String(),
		To:         next.String(),
		LineItemID: &lineItemID,
		OccurredAt: now,
	})
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setExtras(orderType Type, extras Extras) error {
	address := strings.TrimSpace(extras.DeliveryAddress)
	if orderType == Delivery && address == "" {
		return errs.NewValueIsRequiredErrorWithCause("delivery address", errors.New("DELIVERY orders need an address"))
	}
	o.deliveryAddress = address
	o.specialInstructions = strings.TrimSpace(extras.SpecialInstructions)
	return nil
}

func (o *Order) setLines(lines []CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]LineItem, 0, len(lines))
	var errList []error
	for i, line := range lines {
		item, err := newLineItem(line.Item, line.Quantity, i)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	o.items = items
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
