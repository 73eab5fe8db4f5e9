package order

import (
	"fmt"
	"strings"

	"kitchen/internal/pkg/errs"
)

// ItemStatus tracks a single line item through the kitchen. It only moves
// forward: PENDING -> PREPARING -> READY -> COMPLETED, steps may be skipped.
type ItemStatus int

const (
	ItemUnknown ItemStatus = iota
	ItemPending
	ItemPreparing
	ItemReady
	ItemCompleted
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:   "UNKNOWN",
		ItemPending:   "PENDING",
		ItemPreparing: "PREPARING",
		ItemReady:     "READY",
		ItemCompleted: "COMPLETED",
	}
}

func ParseItemStatus(s string) (ItemStatus, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getItemStatusStrings() {
		if status != ItemUnknown && str == name {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause("item status", fmt.Errorf("%q is not a valid item status", s))
}

func (s ItemStatus) Validate() error {
	if s < ItemPending || s > ItemCompleted {
		return errs.NewValueIsInvalidErrorWithCause("item status", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s ItemStatus) TransitionTo(target ItemStatus) (ItemStatus, error) {
	if err := target.Validate(); err != nil {
		return ItemUnknown, err
	}
	if target <= s {
		return ItemUnknown, errs.NewInvalidTransitionError("line item", s.String(), target.String())
	}
	return target, nil
}
