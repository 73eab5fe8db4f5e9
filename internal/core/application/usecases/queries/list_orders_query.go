package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListActiveOrdersQuery or NewListOrdersByStatusQuery constructor",
	)
)

// ListOrdersQuery selects orders by status, oldest first. The kitchen display
// uses the active variant: everything still PENDING, PREPARING or READY.
//
// Example:
//
//	query := NewListActiveOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("list active orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s\n", o.OrderNumber, o.Status)
//	}
type ListOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewListActiveOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{statuses: order.ActiveStatuses(), guard: guard.NewConstructorGuard()}
}

// NewListOrdersByStatusQuery parses every name case-insensitively. At least
// one status is required and duplicates are ignored.
func NewListOrdersByStatusQuery(statuses ...string) (ListOrdersQuery, error) {
	if len(statuses) == 0 {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("status")
	}

	seen := make(map[order.Status]struct{}, len(statuses))
	parsed := make([]order.Status, 0, len(statuses))
	var errList []error
	for _, s := range statuses {
		status, err := order.ParseStatus(s)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if _, ok := seen[status]; ok {
			continue
		}
		seen[status] = struct{}{}
		parsed = append(parsed, status)
	}
	if len(errList) > 0 {
		return ListOrdersQuery{}, errors.Join(errList...)
	}

	return ListOrdersQuery{statuses: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Statuses() []order.Status {
	return append([]order.Status(nil), q.statuses...)
}
