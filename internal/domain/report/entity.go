package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
)

// Status of attendance for a single day.
type Status string

const (
	StatusNormal     Status = "normal"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusAbsent     Status = "absent"
	StatusAbnormal   Status = "abnormal"
	StatusLeave      Status = "leave"
	StatusHoliday    Status = "holiday"
	StatusNonWorkDay Status = "non_work_day"
)

// RateTier is the coarse grade of a monthly attendance rate.
type RateTier string

const (
	TierRed    RateTier = "red"    // below the configured threshold
	TierYellow RateTier = "yellow" // threshold..90
	TierGreen  RateTier = "green"  // 90 and above
)

// RemarkDelayedCheckout marks a check-out later than the rule's
// out_end, regardless of status.
const RemarkDelayedCheckout = "下班延遲打卡"

// ClockTime is a time of day without a date, minute precision plus
// seconds as punch exports carry them.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{Hour: hour, Minute: minute}
}

// ParseClock parses an HH:MM configuration string. Malformed strings
// default to midnight.
func ParseClock(s string) ClockTime {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return ClockTime{}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}
	}
	return ClockTime{Hour: hour, Minute: minute}
}

func (c ClockTime) seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

func (c ClockTime) After(o ClockTime) bool  { return c.seconds() > o.seconds() }
func (c ClockTime) Before(o ClockTime) bool { return c.seconds() < o.seconds() }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// TimeRule bounds the accepted check-in and check-out windows for one
// regime. All comparisons in classification run against these.
type TimeRule struct {
	InStart  ClockTime
	InEnd    ClockTime
	OutStart ClockTime
	OutEnd   ClockTime
}

// ColorRule configures the cell emphasis derived for the renderer.
// Color names are plain strings ("green", "red", ...); "none" disables.
type ColorRule struct {
	NormalIn    string
	NormalOut   string
	AbnormalIn  string
	AbnormalOut string
}

func DefaultColorRule() ColorRule {
	return ColorRule{
		NormalIn:    "green",
		NormalOut:   "green",
		AbnormalIn:  "red",
		AbnormalOut: "red",
	}
}

// RawRow is one cleaned (employee, day) observation from the source
// workbook. Consumed by classification and discarded.
type RawRow struct {
	Name     string
	Date     time.Time
	CheckIn  *ClockTime
	CheckOut *ClockTime
}

// AttendanceRecord is a classified day. Built fully populated by the
// classifier and never mutated afterwards.
type AttendanceRecord struct {
	Date     time.Time
	CheckIn  *ClockTime
	CheckOut *ClockTime
	Status   Status
	Remark   string
}

// MonthlyAttendance is one staff member's judged month.
type MonthlyAttendance struct {
	Staff          staff.Staff
	Year           int
	Month          time.Month
	Records        []AttendanceRecord
	RequiredDays   int
	ActualDays     int
	AttendanceRate float64
	RateTier       RateTier
}

// MonthlyStats summarizes the reporting period across all staff.
type MonthlyStats struct {
	Year             int
	Month            time.Month
	RequiredWorkDays int
	Holidays         int
	TotalStaffCount  int
	InternalCount    int
	ExternalCount    int
}

// Result is the engine's outward-facing artifact, handed to the
// renderer collaborator.
type Result struct {
	RunID    string
	Year     int
	Month    time.Month
	Internal []MonthlyAttendance
	External []MonthlyAttendance
	Stats    MonthlyStats
	Holidays map[time.Time]struct{}
	Warnings []string
}
