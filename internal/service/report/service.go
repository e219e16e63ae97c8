package report

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/config"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-report-go/internal/service/classify"
	"github.com/cmlabs-hris/attendance-report-go/internal/service/extract"
	"github.com/cmlabs-hris/attendance-report-go/internal/service/rate"
	staffsvc "github.com/cmlabs-hris/attendance-report-go/internal/service/staff"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	extractor *extract.Extractor
	directory *staffsvc.Directory
	cfg       config.ReportConfig
	renderer  report.Renderer
}

// NewReportService wires the pipeline. renderer may be nil when no
// presentation output is wanted.
func NewReportService(extractor *extract.Extractor, directory *staffsvc.Directory, cfg config.ReportConfig, renderer report.Renderer) report.ReportService {
	return &ReportServiceImpl{
		extractor: extractor,
		directory: directory,
		cfg:       cfg,
		renderer:  renderer,
	}
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.GenerateReportRequest) (report.Result, error) {
	if err := req.Validate(); err != nil {
		return report.Result{}, err
	}

	// The export filename seeds the year for short-form dates; a
	// filename that doesn't match is not an error.
	filename := req.SourceFilename
	if filename == "" {
		filename = filepath.Base(req.SourcePath)
	}
	seedYear, _, _ := extract.TryParseReportFilename(filename)

	rows, warns, err := s.extractor.ParseFile(req.SourcePath, seedYear)
	if err != nil {
		return report.Result{}, err
	}
	if len(rows) == 0 {
		return report.Result{}, report.NewNoDataError()
	}

	// The year/month of the first parsed record defines the reporting
	// period for the run.
	year := rows[0].Date.Year()
	month := rows[0].Date.Month()

	names, rowsByName := groupByName(rows, year, month)
	if len(names) == 0 {
		return report.Result{}, report.NewNoDataError()
	}

	// Strict matching: an empty roster cannot classify anyone at all;
	// otherwise the first unknown employee aborts the run by name so
	// the roster gets fixed instead of silently dropping people.
	if s.directory.Len() == 0 {
		return report.Result{}, report.NewAllUnclassifiedError(names)
	}

	calc := rate.NewCalculator(s.cfg.Holidays)

	var internal, external []report.MonthlyAttendance
	for _, name := range names {
		member, err := s.directory.GetByName(name)
		if err != nil {
			if errors.Is(err, staff.ErrStaffNotFound) {
				return report.Result{}, &report.UnclassifiedStaffError{Name: name}
			}
			return report.Result{}, err
		}

		rule := s.ruleFor(member.Regime)
		records := make([]report.AttendanceRecord, 0, len(rowsByName[name]))
		for _, raw := range rowsByName[name] {
			records = append(records, classify.Classify(raw, member.Regime, rule))
		}

		monthly := calc.MonthlyAttendance(member, records, year, month, s.cfg.RateThreshold)
		if member.Regime == staff.RegimeExternal {
			external = append(external, monthly)
		} else {
			internal = append(internal, monthly)
		}
	}

	if len(internal) == 0 && len(external) == 0 {
		return report.Result{}, report.NewNoDataError()
	}

	result := report.Result{
		RunID:    uuid.NewString(),
		Year:     year,
		Month:    month,
		Internal: sortAttendance(internal, s.cfg.SortBy),
		External: sortAttendance(external, s.cfg.SortBy),
		Stats:    calc.MonthlyStats(year, month, len(internal), len(external)),
		Holidays: s.cfg.Holidays,
		Warnings: warns,
	}

	if s.renderer != nil {
		if err := s.renderer.Render(ctx, result); err != nil {
			return report.Result{}, err
		}
	}

	return result, nil
}

func (s *ReportServiceImpl) ruleFor(regime staff.Regime) report.TimeRule {
	if regime == staff.RegimeExternal {
		return s.cfg.ExternalRule
	}
	return s.cfg.InternalRule
}

// groupByName filters rows to the reporting period and groups them by
// employee in first-seen order. Duplicate names across sheets merge.
func groupByName(rows []report.RawRow, year int, month time.Month) ([]string, map[string][]report.RawRow) {
	var names []string
	grouped := make(map[string][]report.RawRow)

	for _, row := range rows {
		if row.Date.Year() != year || row.Date.Month() != month {
			continue
		}
		if _, seen := grouped[row.Name]; !seen {
			names = append(names, row.Name)
		}
		grouped[row.Name] = append(grouped[row.Name], row)
	}

	return names, grouped
}
