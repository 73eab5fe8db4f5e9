package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"kitchen/internal/core/domain/model/report"
)

// RenderCSV writes a two-column sheet that opens in spreadsheet tools. The
// first line is "Report Type,<kind>".
func RenderCSV(rep report.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Report Type", string(rep.Kind)}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range reportRows(rep) {
		if err := w.Write([]string{r.label, r.value}); err != nil {
			return nil, fmt.Errorf("write csv row %q: %w", r.label, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
