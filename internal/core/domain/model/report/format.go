package report

import (
	"fmt"
	"strings"

	"kitchen/internal/pkg/errs"
)

// Format is an export encoding of a Report.
type Format string

const (
	PDF Format = "pdf"
	CSV Format = "csv"
)

// ParseFormat accepts pdf and csv; excel and xlsx are served as CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return PDF, nil
	case "csv", "excel", "xlsx":
		return CSV, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("format", fmt.Errorf("%q is not a supported export format", s))
	}
}

func (f Format) ContentType() string {
	if f == PDF {
		return "application/pdf"
	}
	return "text/csv"
}

func (f Format) Extension() string {
	return string(f)
}

// FileName names a download, e.g. "daily-report.pdf".
func FileName(kind Kind, f Format) string {
	return fmt.Sprintf("%s-report.%s", kind, f.Extension())
}

// Kind is which preset produced the report; it only affects titles and file names.
type Kind string

const (
	Daily   Kind = "daily"
	Weekly  Kind = "weekly"
	Monthly Kind = "monthly"
	Custom  Kind = "custom"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Daily, Weekly, Monthly, Custom:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("report type", fmt.Errorf("%q is not a report type", s))
	}
}

func (k Kind) Title() string {
	switch k {
	case Daily:
		return "Daily Report"
	case Weekly:
		return "Weekly Report"
	case Monthly:
		return "Monthly Report"
	default:
		return "Sales Report"
	}
}
