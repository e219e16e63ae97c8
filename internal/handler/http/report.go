package http

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/handler/http/response"
)

// uploads larger than this are rejected before parsing
const maxUploadSize = 32 << 20 // 32 MiB

type ReportHandler interface {
	// Monthly attendance report from an uploaded export
	Generate(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Generate handles POST /reports. The attendance export is uploaded as
// multipart form-data under the "source" field; the original filename
// is kept because it seeds the reporting year for short-form dates.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("source")
	if err != nil {
		response.BadRequest(w, "source file is required", nil)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		response.BadRequest(w, "source must be an .xlsx file", nil)
		return
	}

	tmp, err := os.CreateTemp("", "attendance-*.xlsx")
	if err != nil {
		response.InternalServerError(w, "failed to store upload")
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		response.InternalServerError(w, "failed to store upload")
		return
	}

	req := report.GenerateReportRequest{
		SourcePath:     tmp.Name(),
		SourceFilename: header.Filename,
	}

	result, err := h.reportService.Generate(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report.ToReportResponse(result))
}
