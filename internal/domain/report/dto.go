package report

import (
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

// ========================================
// REPORT GENERATION DTOs
// ========================================

type GenerateReportRequest struct {
	// SourcePath is the workbook on disk to ingest.
	SourcePath string `json:"-"`

	// SourceFilename is the original upload name, used only to seed
	// the year for short-form dates (MonRepyymmdd). Optional.
	SourceFilename string `json:"-"`
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SourcePath) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "source workbook is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   string  `json:"status"`
	Remark   string  `json:"remark,omitempty"`
}

type MonthlyAttendanceResponse struct {
	Name           string           `json:"name"`
	Regime         string           `json:"regime"`
	RequiredDays   int              `json:"required_days"`
	ActualDays     int              `json:"actual_days"`
	AttendanceRate float64          `json:"attendance_rate"`
	RateTier       string           `json:"rate_tier"`
	Records        []RecordResponse `json:"records"`
}

type StatsResponse struct {
	RequiredWorkDays int `json:"required_work_days"`
	Holidays         int `json:"holidays"`
	TotalStaffCount  int `json:"total_staff_count"`
	InternalCount    int `json:"internal_count"`
	ExternalCount    int `json:"external_count"`
}

type ReportResponse struct {
	RunID    string                      `json:"run_id"`
	Year     int                         `json:"year"`
	Month    int                         `json:"month"`
	Internal []MonthlyAttendanceResponse `json:"internal"`
	External []MonthlyAttendanceResponse `json:"external"`
	Stats    StatsResponse               `json:"stats"`
	Warnings []string                    `json:"warnings,omitempty"`
}

func clockPtrToString(c *ClockTime) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

func toMonthlyAttendanceResponse(m MonthlyAttendance) MonthlyAttendanceResponse {
	records := make([]RecordResponse, 0, len(m.Records))
	for _, rec := range m.Records {
		records = append(records, RecordResponse{
			Date:     rec.Date.Format("2006-01-02"),
			CheckIn:  clockPtrToString(rec.CheckIn),
			CheckOut: clockPtrToString(rec.CheckOut),
			Status:   string(rec.Status),
			Remark:   rec.Remark,
		})
	}
	return MonthlyAttendanceResponse{
		Name:           m.Staff.Name,
		Regime:         string(m.Staff.Regime),
		RequiredDays:   m.RequiredDays,
		ActualDays:     m.ActualDays,
		AttendanceRate: m.AttendanceRate,
		RateTier:       string(m.RateTier),
		Records:        records,
	}
}

func ToReportResponse(r Result) ReportResponse {
	internal := make([]MonthlyAttendanceResponse, 0, len(r.Internal))
	for _, m := range r.Internal {
		internal = append(internal, toMonthlyAttendanceResponse(m))
	}
	external := make([]MonthlyAttendanceResponse, 0, len(r.External))
	for _, m := range r.External {
		external = append(external, toMonthlyAttendanceResponse(m))
	}
	return ReportResponse{
		RunID:    r.RunID,
		Year:     r.Year,
		Month:    int(r.Month),
		Internal: internal,
		External: external,
		Stats: StatsResponse{
			RequiredWorkDays: r.Stats.RequiredWorkDays,
			Holidays:         r.Stats.Holidays,
			TotalStaffCount:  r.Stats.TotalStaffCount,
			InternalCount:    r.Stats.InternalCount,
			ExternalCount:    r.Stats.ExternalCount,
		},
		Warnings: r.Warnings,
	}
}
