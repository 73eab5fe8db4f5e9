package report

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// DateLayout is the wire format of report dates.
const DateLayout = "2006-01-02"

var ErrDateRangeIsNotConstructed = errors.New("DateRange must be created via NewDateRange, ParseDateRange, Day or Month")

// DateRange is an inclusive range of calendar dates [start, end] in the
// kitchen's time zone. Both bounds are midnight of their day.
type DateRange struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewDateRange truncates start and end to their calendar dates in loc.
func NewDateRange(start, end time.Time, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := midnight(start.In(loc))
	e := midnight(end.In(loc))
	if s.After(e) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"date range",
			fmt.Errorf("start %s is after end %s", s.Format(DateLayout), e.Format(DateLayout)),
		)
	}

	return DateRange{start: s, end: e, guard: guard.NewConstructorGuard()}, nil
}

// ParseDateRange parses both bounds with DateLayout.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	s, startErr := time.ParseInLocation(DateLayout, start, loc)
	if startErr != nil {
		startErr = errs.NewValueIsInvalidErrorWithCause("startDate", startErr)
	}
	e, endErr := time.ParseInLocation(DateLayout, end, loc)
	if endErr != nil {
		endErr = errs.NewValueIsInvalidErrorWithCause("endDate", endErr)
	}
	if err := errors.Join(startErr, endErr); err != nil {
		return DateRange{}, err
	}

	return NewDateRange(s, e, loc)
}

// Day is the single-date range of date.
func Day(date time.Time, loc *time.Location) DateRange {
	r, _ := NewDateRange(date, date, loc)
	return r
}

// Month covers every day of the calendar month.
func Month(year int, month time.Month, loc *time.Location) (DateRange, error) {
	if month < time.January || month > time.December {
		return DateRange{}, errs.NewValueIsOutOfRangeError("month", int(month), 1, 12)
	}
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return NewDateRange(first, last, loc)
}

func (r DateRange) Validate() error {
	return r.guard.Validate(ErrDateRangeIsNotConstructed)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) Location() *time.Location {
	return r.start.Location()
}

// Bounds returns the half-open instant interval [from, until) covering the
// range: from is start at 00:00 and until is the midnight after end.
func (r DateRange) Bounds() (time.Time, time.Time) {
	return r.start, r.end.AddDate(0, 0, 1)
}

// Contains reports whether t falls on one of the range's dates.
func (r DateRange) Contains(t time.Time) bool {
	from, until := r.Bounds()
	return !t.Before(from) && t.Before(until)
}

func (r DateRange) String() string {
	return r.start.Format(DateLayout) + " to " + r.end.Format(DateLayout)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
