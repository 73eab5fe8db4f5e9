package order

import (
	"fmt"
	"strings"

	"kitchen/internal/pkg/errs"
)

// Type is how the customer receives the order.
type Type int

const (
	UnknownType Type = iota
	Pickup
	Delivery
	DineIn
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		Pickup:      "PICKUP",
		Delivery:    "DELIVERY",
		DineIn:      "DINE_IN",
	}
}

// ParseType accepts PICKUP, DELIVERY and DINE_IN in any letter case.
func ParseType(s string) (Type, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for t, str := range getTypeStrings() {
		if t != UnknownType && str == name {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not a valid order type", s))
}

func (t Type) Validate() error {
	if t < Pickup || t > DineIn {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Priority orders the kitchen queue. NORMAL is the default.
type Priority int

const (
	UnknownPriority Priority = iota
	Low
	Normal
	High
	Urgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "UNKNOWN",
		Low:             "LOW",
		Normal:          "NORMAL",
		High:            "HIGH",
		Urgent:          "URGENT",
	}
}

// ParsePriority resolves a priority case-insensitively; an empty string means Normal.
func ParsePriority(s string) (Priority, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return Normal, nil
	}
	for p, str := range getPriorityStrings() {
		if p != UnknownPriority && str == name {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

func (p Priority) Validate() error {
	if p < Low || p > Urgent {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
