package queries

import (
	"context"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/report"
	"kitchen/internal/core/domain/services"
)

type BuildReportQueryHandler struct {
	orders     OrderReader
	aggregator services.ReportAggregator
	clock      kernel.Clock
}

func NewBuildReportQueryHandler(
	orders OrderReader,
	aggregator services.ReportAggregator,
	clock kernel.Clock,
) BuildReportQueryHandler {
	return BuildReportQueryHandler{orders: orders, aggregator: aggregator, clock: clock}
}

// Handle fetches every order placed inside the range and aggregates it. It
// only reads, so calling it twice over unchanged data gives the same report.
func (h BuildReportQueryHandler) Handle(ctx context.Context, query BuildReportQuery) (report.Report, error) {
	if err := query.Validate(); err != nil {
		return report.Report{}, err
	}

	from, until := query.Dates().Bounds()
	orders, err := h.orders.FindByOrderTimeRange(ctx, from, until)
	if err != nil {
		return report.Report{}, fmt.Errorf("load orders for %s: %w", query.Dates(), err)
	}

	return h.aggregator.Aggregate(query.Kind(), query.Dates(), orders, h.clock.Now())
}
