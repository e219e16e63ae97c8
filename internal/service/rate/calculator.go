// Package rate computes the monthly required/actual/rate/tier summary
// from classified attendance records.
package rate

import (
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
)

// The fixed upper tier boundary. Only the lower boundary is
// configurable; this asymmetry is intentional.
const greenBoundary = 90.0

// attendedStatuses are the statuses that count as an attended day.
var attendedStatuses = map[report.Status]struct{}{
	report.StatusNormal:     {},
	report.StatusLate:       {},
	report.StatusEarlyLeave: {},
	report.StatusAbnormal:   {},
	report.StatusLeave:      {},
}

type Calculator struct {
	holidays map[time.Time]struct{}
}

func NewCalculator(holidays map[time.Time]struct{}) *Calculator {
	if holidays == nil {
		holidays = map[time.Time]struct{}{}
	}
	return &Calculator{holidays: holidays}
}

// RequiredDays counts the calendar days of the month that fall on the
// staff member's work weekdays and are not holidays.
func (c *Calculator) RequiredDays(s staff.Staff, year int, month time.Month) int {
	required := 0
	for day := firstOfMonth(year, month); day.Month() == month; day = day.AddDate(0, 0, 1) {
		if _, holiday := c.holidays[day]; holiday {
			continue
		}
		if s.ShouldWorkOn(day) {
			required++
		}
	}
	return required
}

// ActualDays counts records whose status represents an attended day.
// Absences and non-work-day markers do not count.
func (c *Calculator) ActualDays(records []report.AttendanceRecord) int {
	actual := 0
	for _, rec := range records {
		if _, ok := attendedStatuses[rec.Status]; ok {
			actual++
		}
	}
	return actual
}

// Rate returns the attendance percentage. Nothing required counts as
// fully satisfied. No rounding happens here.
func (c *Calculator) Rate(actual, required int) float64 {
	if required == 0 {
		return 100.0
	}
	return float64(actual) / float64(required) * 100
}

// Tier grades a rate: below threshold is red, below the fixed 90
// boundary is yellow, otherwise green.
func (c *Calculator) Tier(rateValue float64, threshold int) report.RateTier {
	switch {
	case rateValue < float64(threshold):
		return report.TierRed
	case rateValue < greenBoundary:
		return report.TierYellow
	default:
		return report.TierGreen
	}
}

// MonthlyAttendance assembles the full monthly judgment for one staff
// member.
func (c *Calculator) MonthlyAttendance(s staff.Staff, records []report.AttendanceRecord, year int, month time.Month, threshold int) report.MonthlyAttendance {
	required := c.RequiredDays(s, year, month)
	actual := c.ActualDays(records)
	rateValue := c.Rate(actual, required)

	return report.MonthlyAttendance{
		Staff:          s,
		Year:           year,
		Month:          month,
		Records:        records,
		RequiredDays:   required,
		ActualDays:     actual,
		AttendanceRate: rateValue,
		RateTier:       c.Tier(rateValue, threshold),
	}
}

// MonthlyStats summarizes the period across the whole roster: Mon-Fri
// work days, holidays falling inside the month, staff counts.
func (c *Calculator) MonthlyStats(year int, month time.Month, internalCount, externalCount int) report.MonthlyStats {
	workDays, holidayCount := 0, 0
	for day := firstOfMonth(year, month); day.Month() == month; day = day.AddDate(0, 0, 1) {
		if _, holiday := c.holidays[day]; holiday {
			holidayCount++
			continue
		}
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			workDays++
		}
	}

	return report.MonthlyStats{
		Year:             year,
		Month:            month,
		RequiredWorkDays: workDays,
		Holidays:         holidayCount,
		TotalStaffCount:  internalCount + externalCount,
		InternalCount:    internalCount,
		ExternalCount:    externalCount,
	}
}

func firstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
