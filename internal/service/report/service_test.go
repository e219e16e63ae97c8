package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/config"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/repository/csvfile"
	"github.com/cmlabs-hris/attendance-report-go/internal/service/extract"
	staffsvc "github.com/cmlabs-hris/attendance-report-go/internal/service/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testReportConfig() config.ReportConfig {
	return config.ReportConfig{
		InternalRule: report.TimeRule{
			InStart:  report.NewClockTime(9, 0),
			InEnd:    report.NewClockTime(9, 30),
			OutStart: report.NewClockTime(18, 0),
			OutEnd:   report.NewClockTime(18, 30),
		},
		ExternalRule: report.TimeRule{
			InStart:  report.NewClockTime(9, 30),
			InEnd:    report.NewClockTime(10, 0),
			OutStart: report.NewClockTime(10, 30),
			OutEnd:   report.NewClockTime(12, 0),
		},
		RateThreshold: 80,
		SortBy:        SortByAttendanceRate,
		Holidays:      map[time.Time]struct{}{},
		Colors:        report.DefaultColorRule(),
	}
}

// writeSource builds a MonRep-style workbook with one row per entry.
func writeSource(t *testing.T, dir string, entries [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []string{"姓名", "日期", "上班", "下班"}
	for i, v := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	for r, entry := range entries {
		for c, v := range entry {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(dir, "MonRep250301.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func newDirectory(t *testing.T, dir, roster string) *staffsvc.Directory {
	t.Helper()
	path := filepath.Join(dir, "staff.csv")
	require.NoError(t, os.WriteFile(path, []byte(roster), 0o644))
	directory := staffsvc.NewDirectory(csvfile.NewStaffRepository(path))
	require.NoError(t, directory.Load(context.Background()))
	return directory
}

type captureRenderer struct {
	rendered *report.Result
}

func (c *captureRenderer) Render(ctx context.Context, result report.Result) error {
	c.rendered = &result
	return nil
}

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	source := writeSource(t, dir, [][]string{
		{"王小明", "2025-03-03", "09:01", "18:05"}, // normal
		{"王小明", "2025-03-04", "09:45", "18:05"}, // late
		{"王小明", "2025-03-05", "", ""},           // absent
		{"李大仁", "2025-03-03", "09:50", "13:00"}, // external, normal
		{"李大仁", "2025-03-05", "10:05", "11:00"}, // external, late
	})
	directory := newDirectory(t, dir, "Name,Type\n王小明,內勤\n李大仁,外勤\n")

	renderer := &captureRenderer{}
	svc := NewReportService(extract.New(), directory, testReportConfig(), renderer)

	result, err := svc.Generate(ctx, report.GenerateReportRequest{SourcePath: source})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, time.March, result.Month)
	require.Len(t, result.Internal, 1)
	require.Len(t, result.External, 1)

	internal := result.Internal[0]
	assert.Equal(t, "王小明", internal.Staff.Name)
	assert.Equal(t, 21, internal.RequiredDays) // March 2025 weekdays
	assert.Equal(t, 2, internal.ActualDays)    // absent day does not count
	assert.InDelta(t, 100.0*2/21, internal.AttendanceRate, 1e-9)
	assert.Equal(t, report.TierRed, internal.RateTier)

	statuses := []report.Status{}
	for _, rec := range internal.Records {
		statuses = append(statuses, rec.Status)
	}
	assert.Equal(t, []report.Status{report.StatusNormal, report.StatusLate, report.StatusAbsent}, statuses)

	external := result.External[0]
	assert.Equal(t, "李大仁", external.Staff.Name)
	assert.Equal(t, 13, external.RequiredDays) // Mon/Wed/Fri in March 2025
	assert.Equal(t, 2, external.ActualDays)
	assert.Equal(t, report.StatusNormal, external.Records[0].Status)
	assert.Equal(t, report.StatusLate, external.Records[1].Status)
	// post-noon checkout earns the remark, never a penalty
	assert.Equal(t, report.RemarkDelayedCheckout, external.Records[0].Remark)

	assert.Equal(t, 1, result.Stats.InternalCount)
	assert.Equal(t, 1, result.Stats.ExternalCount)

	// result was handed to the renderer collaborator
	require.NotNil(t, renderer.rendered)
	assert.Equal(t, result.RunID, renderer.rendered.RunID)
}

func TestReportService_Generate_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	source := writeSource(t, dir, [][]string{
		{"王小明", "2025-03-03", "09:01", "18:05"},
		{"陌生人", "2025-03-03", "09:00", "18:00"},
	})
	directory := newDirectory(t, dir, "Name,Type\n王小明,內勤\n")

	svc := NewReportService(extract.New(), directory, testReportConfig(), nil)

	_, err := svc.Generate(ctx, report.GenerateReportRequest{SourcePath: source})
	var unclassified *report.UnclassifiedStaffError
	require.True(t, errors.As(err, &unclassified))
	assert.Equal(t, "陌生人", unclassified.Name)
}

func TestReportService_Generate_EmptyRoster(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	source := writeSource(t, dir, [][]string{
		{"王小明", "2025-03-03", "09:01", "18:05"},
	})
	directory := newDirectory(t, dir, "Name,Type\n")

	svc := NewReportService(extract.New(), directory, testReportConfig(), nil)

	_, err := svc.Generate(ctx, report.GenerateReportRequest{SourcePath: source})
	var empty *report.EmptyResultError
	require.True(t, errors.As(err, &empty))
	assert.Contains(t, err.Error(), "王小明")
}

func TestReportService_Generate_NoData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	source := writeSource(t, dir, nil)
	directory := newDirectory(t, dir, "Name,Type\n王小明,內勤\n")

	svc := NewReportService(extract.New(), directory, testReportConfig(), nil)

	_, err := svc.Generate(ctx, report.GenerateReportRequest{SourcePath: source})
	var empty *report.EmptyResultError
	require.True(t, errors.As(err, &empty))
	assert.Contains(t, err.Error(), "no attendance data")
}

func TestReportService_Generate_FilenameSeedsYear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// short-form dates only resolve through the filename year
	source := writeSource(t, dir, [][]string{
		{"王小明", "03/03(一)", "09:01", "18:05"},
	})
	directory := newDirectory(t, dir, "Name,Type\n王小明,內勤\n")

	svc := NewReportService(extract.New(), directory, testReportConfig(), nil)

	result, err := svc.Generate(ctx, report.GenerateReportRequest{SourcePath: source})
	require.NoError(t, err)
	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, time.March, result.Month)
}

func TestReportService_Generate_FiltersOtherMonths(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	source := writeSource(t, dir, [][]string{
		{"王小明", "2025-03-03", "09:01", "18:05"},
		{"王小明", "2025-04-01", "09:01", "18:05"}, // outside the period
	})
	directory := newDirectory(t, dir, "Name,Type\n王小明,內勤\n")

	svc := NewReportService(extract.New(), directory, testReportConfig(), nil)

	result, err := svc.Generate(ctx, report.GenerateReportRequest{SourcePath: source})
	require.NoError(t, err)
	require.Len(t, result.Internal, 1)
	assert.Len(t, result.Internal[0].Records, 1)
}

func TestReportService_Generate_MissingSource(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	directory := newDirectory(t, dir, "Name,Type\n王小明,內勤\n")

	svc := NewReportService(extract.New(), directory, testReportConfig(), nil)

	_, err := svc.Generate(ctx, report.GenerateReportRequest{SourcePath: filepath.Join(dir, "nope.xlsx")})
	require.Error(t, err)
}
