package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/report"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrBuildReportQueryIsNotConstructed = errors.New(
		"BuildReportQuery must be created via one of the NewXReportQuery constructors",
	)
)

// BuildReportQuery asks for the sales report of an inclusive range of
// calendar dates in the kitchen's time zone. Every constructor validates the
// range, so an unparseable or inverted range never reaches the store.
//
// Example:
//
//	query, err := NewWeeklyReportQuery("2024-05-01", "2024-05-07", loc)
//	if err != nil {
//	    return err // 400
//	}
//	rep, err := handler.Handle(ctx, query)
type BuildReportQuery struct {
	kind  report.Kind
	dates report.DateRange

	guard guard.ConstructorGuard
}

func NewBuildReportQuery(kind report.Kind, dates report.DateRange) (BuildReportQuery, error) {
	if err := dates.Validate(); err != nil {
		return BuildReportQuery{}, errs.NewValueIsInvalidErrorWithCause("date range", err)
	}
	return BuildReportQuery{kind: kind, dates: dates, guard: guard.NewConstructorGuard()}, nil
}

// NewDailyReportQuery covers the single date "YYYY-MM-DD".
func NewDailyReportQuery(date string, loc *time.Location) (BuildReportQuery, error) {
	return newParsedReportQuery(report.Daily, date, date, loc)
}

func NewWeeklyReportQuery(startDate, endDate string, loc *time.Location) (BuildReportQuery, error) {
	return newParsedReportQuery(report.Weekly, startDate, endDate, loc)
}

func NewCustomReportQuery(startDate, endDate string, loc *time.Location) (BuildReportQuery, error) {
	return newParsedReportQuery(report.Custom, startDate, endDate, loc)
}

func NewMonthlyReportQuery(year, month int, loc *time.Location) (BuildReportQuery, error) {
	dates, err := report.Month(year, time.Month(month), loc)
	if err != nil {
		return BuildReportQuery{}, err
	}
	return NewBuildReportQuery(report.Monthly, dates)
}

func newParsedReportQuery(kind report.Kind, startDate, endDate string, loc *time.Location) (BuildReportQuery, error) {
	dates, err := report.ParseDateRange(startDate, endDate, loc)
	if err != nil {
		return BuildReportQuery{}, err
	}
	return NewBuildReportQuery(kind, dates)
}

func (q BuildReportQuery) Validate() error {
	return q.guard.Validate(ErrBuildReportQueryIsNotConstructed)
}

func (q BuildReportQuery) Kind() report.Kind {
	return q.kind
}

func (q BuildReportQuery) Dates() report.DateRange {
	return q.dates
}
