package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Report domain errors
	var formatErr *report.FormatError
	if errors.As(err, &formatErr) {
		UnprocessableEntity(w, "SOURCE_FORMAT_ERROR", formatErr.Error())
		return
	}

	var unclassifiedErr *report.UnclassifiedStaffError
	if errors.As(err, &unclassifiedErr) {
		UnprocessableEntity(w, "UNCLASSIFIED_STAFF", unclassifiedErr.Error())
		return
	}

	var emptyErr *report.EmptyResultError
	if errors.As(err, &emptyErr) {
		UnprocessableEntity(w, "EMPTY_RESULT", emptyErr.Error())
		return
	}

	// Staff domain errors
	switch {
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrDuplicateStaff):
		Conflict(w, "Staff member already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
