package report

import "context"

// ReportService drives the extract -> classify -> aggregate pipeline
// over one source workbook.
type ReportService interface {
	// Generate runs the full pipeline and hands the result to the
	// configured renderer, if any.
	Generate(ctx context.Context, req GenerateReportRequest) (Result, error)
}

// Renderer is the external presentation collaborator. The engine only
// produces the Result; spreadsheet/PDF output lives behind this.
type Renderer interface {
	Render(ctx context.Context, result Result) error
}
