package ports

import (
	"kitchen/internal/core/domain/model/report"
)

// ReportRenderer encodes a report. It must not modify rep.
type ReportRenderer interface {
	Render(format report.Format, rep report.Report) ([]byte, error)
}
