// Package export renders reports into downloadable files. Both encodings
// share the same ordered list of label/value rows so a CSV and a PDF of one
// report always carry the same figures.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/report"
)

type row struct {
	label string
	value string
}

func reportRows(rep report.Report) []row {
	rows := []row{
		{"Start Date", rep.Range.Start().Format(report.DateLayout)},
		{"End Date", rep.Range.End().Format(report.DateLayout)},
		{"Total Orders", strconv.Itoa(rep.TotalOrders)},
		{"Total Revenue", rep.TotalRevenue.String()},
		{"Average Order Value", rep.AverageOrderValue.String()},
		{"Average Prep Minutes", rep.AvgPrepMinutes.StringFixed(1)},
	}

	for _, sc := range rep.StatusCounts {
		rows = append(rows, row{"Orders " + sc.Status.String(), strconv.Itoa(sc.Count)})
	}
	for i, item := range rep.TopItems {
		rows = append(rows, row{
			fmt.Sprintf("Top Item %d", i+1),
			fmt.Sprintf("%s x%d (%s)", item.Name, item.Quantity, item.Revenue),
		})
	}
	for _, ph := range rep.PeakHours {
		rows = append(rows, row{"Peak Hour " + ph.Label, strconv.Itoa(ph.Orders)})
	}

	return append(rows, row{"Generated", rep.GeneratedAt.Format(time.RFC3339)})
}

func title(kind report.Kind) string {
	k := string(kind)
	if k == "" {
		return "Report"
	}
	return strings.ToUpper(k[:1]) + k[1:] + " Report"
}
