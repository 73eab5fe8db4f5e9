package report

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// MaxTopItems caps Report.TopItems.
const MaxTopItems = 10

// Report is the aggregated view of the orders placed within Range.
// Lists are never nil; an empty range yields an all-zero report.
type Report struct {
	Kind  Kind
	Range DateRange

	TotalOrders       int
	TotalRevenue      kernel.Money
	AverageOrderValue kernel.Money
	// AvgPrepMinutes is rounded to one decimal place.
	AvgPrepMinutes decimal.Decimal

	StatusCounts []StatusCount
	TopItems     []TopItem
	PeakHours    []PeakHour

	GeneratedAt time.Time
}

type StatusCount struct {
	Status order.Status
	Count  int
}

type TopItem struct {
	Name     string
	Quantity int
	Revenue  kernel.Money
}

type PeakHour struct {
	Hour   int
	Label  string
	Orders int
}
