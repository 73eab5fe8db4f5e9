package services

import (
	"fmt"
	"sort"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/report"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

type ReportAggregator struct{}

func NewReportAggregator() ReportAggregator {
	return ReportAggregator{}
}

// Aggregate builds the report for r from orders. Orders outside r are ignored,
// so callers may pass a superset. The result does not depend on the input
// order: orders are first sorted by orderTime, which also fixes the
// first-encountered tie-break of top items.
func (a ReportAggregator) Aggregate(
	kind report.Kind,
	r report.DateRange,
	orders []*order.Order,
	generatedAt time.Time,
) (report.Report, error) {
	if err := r.Validate(); err != nil {
		return report.Report{}, err
	}

	inRange := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return report.Report{}, err
		}
		if r.Contains(o.OrderTime()) {
			inRange = append(inRange, o)
		}
	}
	sort.SliceStable(inRange, func(i, j int) bool {
		return inRange[i].OrderTime().Before(inRange[j].OrderTime())
	})

	revenue := kernel.ZeroMoney()
	for _, o := range inRange {
		revenue = revenue.Add(o.TotalAmount())
	}

	return report.Report{
		Kind:              kind,
		Range:             r,
		TotalOrders:       len(inRange),
		TotalRevenue:      revenue.Round(),
		AverageOrderValue: revenue.DivRound(len(inRange)),
		AvgPrepMinutes:    a.averagePrepMinutes(inRange),
		StatusCounts:      a.statusCounts(inRange),
		TopItems:          a.topItems(inRange),
		PeakHours:         a.peakHours(inRange, r.Location()),
		GeneratedAt:       generatedAt,
	}, nil
}

// averagePrepMinutes averages whole minutes from orderTime to readyTime over
// the orders that reached READY, rounded half-up to one decimal.
func (a ReportAggregator) averagePrepMinutes(orders []*order.Order) decimal.Decimal {
	var total, counted int64
	for _, o := range orders {
		ready := o.ReadyTime()
		if ready == nil || ready.Before(o.OrderTime()) {
			continue
		}
		total += int64(ready.Sub(o.OrderTime()) / time.Minute)
		counted++
	}
	if counted == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(total).DivRound(decimal.NewFromInt(counted), 1)
}

func (a ReportAggregator) statusCounts(orders []*order.Order) []report.StatusCount {
	counts := make(map[order.Status]int, len(order.Statuses()))
	for _, o := range orders {
		counts[o.Status()]++
	}

	result := make([]report.StatusCount, 0, len(order.Statuses()))
	for _, s := range order.Statuses() {
		result = append(result, report.StatusCount{Status: s, Count: counts[s]})
	}
	return result
}

// topItems groups lines by their snapshot name. Ranking is by quantity,
// descending; equal quantities keep the order in which names were first seen.
func (a ReportAggregator) topItems(orders []*order.Order) []report.TopItem {
	index := make(map[string]int)
	items := make([]report.TopItem, 0)

	for _, o := range orders {
		for _, line := range o.Items() {
			i, ok := index[line.Name()]
			if !ok {
				i = len(items)
				index[line.Name()] = i
				items = append(items, report.TopItem{Name: line.Name(), Revenue: kernel.ZeroMoney()})
			}
			items[i].Quantity += line.Quantity()
			items[i].Revenue = items[i].Revenue.Add(line.Subtotal())
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Quantity > items[j].Quantity
	})
	if len(items) > report.MaxTopItems {
		items = items[:report.MaxTopItems]
	}
	for i := range items {
		items[i].Revenue = items[i].Revenue.Round()
	}
	return items
}

func (a ReportAggregator) peakHours(orders []*order.Order, loc *time.Location) []report.PeakHour {
	var perHour [hoursPerDay]int
	for _, o := range orders {
		perHour[o.OrderTime().In(loc).Hour()]++
	}

	result := make([]report.PeakHour, 0)
	for hour, count := range perHour {
		if count == 0 {
			continue
		}
		result = append(result, report.PeakHour{
			Hour:   hour,
			Label:  fmt.Sprintf("%02d:00 - %02d:59", hour, hour),
			Orders: count,
		})
	}
	return result
}
