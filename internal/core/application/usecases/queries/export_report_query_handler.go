package queries

import (
	"context"
	"fmt"

	"kitchen/internal/core/domain/model/report"
	"kitchen/internal/core/ports"
)

type ExportReportQueryHandler struct {
	reports  BuildReportQueryHandler
	renderer ports.ReportRenderer
}

func NewExportReportQueryHandler(reports BuildReportQueryHandler, renderer ports.ReportRenderer) ExportReportQueryHandler {
	return ExportReportQueryHandler{reports: reports, renderer: renderer}
}

func (h ExportReportQueryHandler) Handle(ctx context.Context, query ExportReportQuery) (ExportReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportReportResponse{}, err
	}

	rep, err := h.reports.Handle(ctx, query.Report())
	if err != nil {
		return ExportReportResponse{}, err
	}

	content, err := h.renderer.Render(query.Format(), rep)
	if err != nil {
		return ExportReportResponse{}, fmt.Errorf("render %s report: %w", query.Format(), err)
	}

	return ExportReportResponse{
		FileName:    report.FileName(rep.Kind, query.Format()),
		ContentType: query.Format().ContentType(),
		Content:     content,
	}, nil
}
