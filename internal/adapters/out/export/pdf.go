package export

import (
	"bytes"
	"fmt"

	"kitchen/internal/core/domain/model/report"

	"github.com/go-pdf/fpdf"
)

const (
	labelWidth = 70
	lineHeight = 8
)

// RenderPDF lays the report out on A4 pages, one label/value pair per line.
// Page breaks are automatic. Document dates are pinned to GeneratedAt so the
// same report always produces the same bytes.
func RenderPDF(rep report.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(rep.GeneratedAt)
	pdf.SetModificationDate(rep.GeneratedAt)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(title(rep.Kind), true)
	pdf.SetAutoPageBreak(true, 20)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(title(rep.Kind)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for _, r := range reportRows(rep) {
		pdf.CellFormat(labelWidth, lineHeight, tr(r.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHeight, tr(r.value), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
