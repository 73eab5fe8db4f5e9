package export

import (
	"fmt"

	"kitchen/internal/core/domain/model/report"
	"kitchen/internal/pkg/errs"
)

// Renderer dispatches to RenderPDF or RenderCSV.
type Renderer struct{}

func NewRenderer() Renderer {
	return Renderer{}
}

func (Renderer) Render(format report.Format, rep report.Report) ([]byte, error) {
	switch format {
	case report.PDF:
		return RenderPDF(rep)
	case report.CSV:
		return RenderCSV(rep)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("format", fmt.Errorf("%q is not a supported export format", format))
	}
}
