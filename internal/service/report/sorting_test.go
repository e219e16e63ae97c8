package report

import (
	"testing"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
)

func attendanceFor(name string, rate float64) report.MonthlyAttendance {
	return report.MonthlyAttendance{
		Staff:          staff.Staff{Name: name, Regime: staff.RegimeInternal},
		AttendanceRate: rate,
	}
}

func names(list []report.MonthlyAttendance) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.Staff.Name)
	}
	return out
}

func TestSortAttendance_ByRate(t *testing.T) {
	input := []report.MonthlyAttendance{
		attendanceFor("王小明", 75.0),
		attendanceFor("李大仁", 95.0),
		attendanceFor("陳美麗", 85.0),
	}

	sorted := sortAttendance(input, SortByAttendanceRate)

	assert.Equal(t, []string{"李大仁", "陳美麗", "王小明"}, names(sorted))
	// input untouched
	assert.Equal(t, "王小明", input[0].Staff.Name)
}

func TestSortAttendance_ByRate_StableOnTies(t *testing.T) {
	input := []report.MonthlyAttendance{
		attendanceFor("王小明", 80.0),
		attendanceFor("李大仁", 80.0),
	}

	sorted := sortAttendance(input, SortByAttendanceRate)

	assert.Equal(t, []string{"王小明", "李大仁"}, names(sorted))
}

func TestSortAttendance_ByNameStrokes(t *testing.T) {
	// 王=4, 李=7, 陳=11, 謝=17
	input := []report.MonthlyAttendance{
		attendanceFor("謝天華", 50.0),
		attendanceFor("陳美麗", 60.0),
		attendanceFor("王小明", 70.0),
		attendanceFor("李大仁", 80.0),
	}

	sorted := sortAttendance(input, SortByNameStrokes)

	assert.Equal(t, []string{"王小明", "李大仁", "陳美麗", "謝天華"}, names(sorted))
}

func TestSortAttendance_ByNameStrokes_SameSurnameFallsBackToName(t *testing.T) {
	input := []report.MonthlyAttendance{
		attendanceFor("王乙", 50.0),
		attendanceFor("王甲", 60.0),
	}

	sorted := sortAttendance(input, SortByNameStrokes)

	// same stroke count, lexicographic name ordering decides
	assert.Equal(t, []string{"王乙", "王甲"}, names(sorted))
}

func TestSortAttendance_UnknownModeFallsBackToRate(t *testing.T) {
	input := []report.MonthlyAttendance{
		attendanceFor("王小明", 20.0),
		attendanceFor("李大仁", 90.0),
	}

	sorted := sortAttendance(input, "whatever")

	assert.Equal(t, []string{"李大仁", "王小明"}, names(sorted))
}

func TestCountStrokes(t *testing.T) {
	assert.Equal(t, 4, countStrokes('王'))
	assert.Equal(t, 17, countStrokes('謝'))
	// non-CJK characters share a constant bucket
	assert.Equal(t, 10, countStrokes('A'))
	// unlisted CJK characters get a deterministic approximation
	assert.Equal(t, countStrokes('啊'), countStrokes('啊'))
}
