package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/report"
	"kitchen/internal/pkg/guard"
)

var (
	ErrExportReportQueryIsNotConstructed = errors.New(
		"ExportReportQuery must be created via NewExportReportQuery constructor",
	)
)

type ExportReportQuery struct {
	report BuildReportQuery
	format report.Format

	guard guard.ConstructorGuard
}

// NewExportReportQuery accepts "pdf", "csv" and the CSV aliases "excel" and "xlsx".
func NewExportReportQuery(reportQuery BuildReportQuery, format string) (ExportReportQuery, error) {
	f, formatErr := report.ParseFormat(format)
	if err := errors.Join(reportQuery.Validate(), formatErr); err != nil {
		return ExportReportQuery{}, err
	}
	return ExportReportQuery{report: reportQuery, format: f, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportReportQuery) Validate() error {
	return q.guard.Validate(ErrExportReportQueryIsNotConstructed)
}

func (q ExportReportQuery) Report() BuildReportQuery {
	return q.report
}

func (q ExportReportQuery) Format() report.Format {
	return q.format
}

// ExportReportResponse is a ready-to-download file.
type ExportReportResponse struct {
	FileName    string
	ContentType string
	Content     []byte
}
