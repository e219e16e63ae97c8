package report

import (
	"fmt"
	"strings"
)

// FormatError means a sheet is structurally unusable: the mandatory
// punch-marker columns were not found within the header search window.
// Fatal for the run.
type FormatError struct {
	Sheet          string
	MissingMarkers []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(
		"sheet %q: missing mandatory punch column(s): %s",
		e.Sheet, strings.Join(e.MissingMarkers, ", "),
	)
}

// UnclassifiedStaffError means an employee appears in the source data
// but not in the roster. Strict matching makes this fatal for the run.
type UnclassifiedStaffError struct {
	Name string
}

func (e *UnclassifiedStaffError) Error() string {
	return fmt.Sprintf("employee %q is not in the staff roster", e.Name)
}

// EmptyResultError means the run produced nothing to report: either
// the source had no usable data, or every employee was unclassified.
type EmptyResultError struct {
	Reason string
}

func (e *EmptyResultError) Error() string {
	return e.Reason
}

// NewNoDataError reports a source with no parseable attendance rows.
func NewNoDataError() *EmptyResultError {
	return &EmptyResultError{Reason: "no attendance data found in source file"}
}

// NewAllUnclassifiedError reports a run where no source employee could
// be classified against the roster.
func NewAllUnclassifiedError(names []string) *EmptyResultError {
	return &EmptyResultError{Reason: fmt.Sprintf(
		"all %d employee(s) are missing from the staff roster: %s",
		len(names), strings.Join(names, ", "),
	)}
}
