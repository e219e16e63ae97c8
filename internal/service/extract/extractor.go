// Package extract turns raw attendance workbook exports into cleaned
// RawRow values. It knows nothing about business rules; it only finds
// the relevant columns and normalizes names, dates and punch times.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	// Header discovery scans this window from the top-left corner.
	headerScanRows = 15
	headerScanCols = 15

	// Punch columns are identified by these exact marker tokens. They
	// are mandatory: without them no attendance can be computed.
	markerCheckIn  = "上班"
	markerCheckOut = "下班"

	// Fallback positions (zero-based) for per-employee sheets whose
	// headers carry no name/date keywords.
	fallbackNameColumn = 1 // column B
	fallbackDateColumn = 2 // column C
)

var (
	nameKeywords = []string{"name", "姓名", "員工"}
	dateKeywords = []string{"date", "日期"}

	// Strips bracketed suffix noise from name cells, e.g. "王小明[*]".
	nameNoisePattern = regexp.MustCompile(`\[.*?\]`)

	// Strips a trailing parenthesized weekday annotation from date
	// text, e.g. "12/05 (五 *)". Both CJK weekday sets occur.
	weekdayAnnotationPattern = regexp.MustCompile(`\s*\([一二三四五六日月火水木金土]\s*\*?\)`)
)

// Extractor reads every worksheet of an export workbook and emits the
// cleaned raw rows. Row-level anomalies are absorbed into the returned
// warnings; structural faults (missing punch columns) abort the sheet.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// ParseFile extracts raw attendance rows from every worksheet of the
// workbook at path. year seeds short-form M/D dates; pass 0 when the
// year is unknown and the current calendar year applies as fallback.
func (e *Extractor) ParseFile(path string, year int) ([]report.RawRow, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	var (
		allRows []report.RawRow
		warns   warnings
	)

	for _, sheet := range f.GetSheetList() {
		grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		rows, err := e.parseSheet(sheet, grid, year, &warns)
		if err != nil {
			return nil, nil, err
		}
		allRows = append(allRows, rows...)
	}

	return allRows, warns.list, nil
}

func (e *Extractor) parseSheet(sheet string, grid [][]string, year int, warns *warnings) ([]report.RawRow, error) {
	headerRow := 0
	nameCol, dateCol := -1, -1
	checkInCol, checkOutCol := -1, -1

	maxRows := len(grid)
	if maxRows > headerScanRows {
		maxRows = headerScanRows
	}
	for r := 0; r < maxRows; r++ {
		maxCols := len(grid[r])
		if maxCols > headerScanCols {
			maxCols = headerScanCols
		}
		for c := 0; c < maxCols; c++ {
			cell := strings.TrimSpace(grid[r][c])
			if cell == "" {
				continue
			}
			lower := strings.ToLower(cell)

			if containsAny(lower, nameKeywords) {
				headerRow = r
				nameCol = c
			}
			if containsAny(lower, dateKeywords) {
				dateCol = c
			}
			if strings.Contains(cell, markerCheckIn) {
				checkInCol = c
			}
			if strings.Contains(cell, markerCheckOut) {
				checkOutCol = c
			}
		}
	}

	// Punch columns are non-negotiable.
	var missing []string
	if checkInCol < 0 {
		missing = append(missing, markerCheckIn)
	}
	if checkOutCol < 0 {
		missing = append(missing, markerCheckOut)
	}
	if len(missing) > 0 {
		return nil, &report.FormatError{Sheet: sheet, MissingMarkers: missing}
	}

	// Per-employee sheets often name the employee in the sheet title
	// instead of a header column.
	currentName := ""
	if nameCol < 0 || dateCol < 0 {
		if nameCol < 0 {
			nameCol = fallbackNameColumn
		}
		if dateCol < 0 {
			dateCol = fallbackDateColumn
		}
		currentName = cleanSheetTitle(sheet)
	}

	var rows []report.RawRow
	for r := headerRow + 1; r < len(grid); r++ {
		row := e.parseDataRow(sheet, grid[r], r, nameCol, dateCol, checkInCol, checkOutCol, &currentName, year, warns)
		if row != nil {
			rows = append(rows, *row)
		}
	}

	return rows, nil
}

// parseDataRow handles one data row. Anything unexpected is absorbed:
// the row is dropped with a warning and extraction continues.
func (e *Extractor) parseDataRow(
	sheet string, cells []string, rowIdx int,
	nameCol, dateCol, checkInCol, checkOutCol int,
	currentName *string, year int, warns *warnings,
) (row *report.RawRow) {
	defer func() {
		if p := recover(); p != nil {
			warns.addf("sheet %q row %d: skipped: %v", sheet, rowIdx+1, p)
			row = nil
		}
	}()

	if name := cleanName(cellAt(cells, nameCol)); name != "" {
		*currentName = name
	}
	if *currentName == "" {
		return nil
	}

	date, ok := extractDate(cellAt(cells, dateCol), year, warns)
	if !ok {
		// summary/footer rows land here
		return nil
	}

	return &report.RawRow{
		Name:     *currentName,
		Date:     date,
		CheckIn:  extractClock(cellAt(cells, checkInCol)),
		CheckOut: extractClock(cellAt(cells, checkOutCol)),
	}
}

// extractDate parses a date cell. Native date cells arrive as Excel
// serial numbers under raw reads; text cells may carry a weekday
// annotation and several layouts. Returns false for unparseable
// values, which callers skip silently.
func extractDate(value string, year int, warns *warnings) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	value = strings.TrimSpace(weekdayAnnotationPattern.ReplaceAllString(value, ""))

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 1 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return midnight(t), true
	}

	// Short form M/D needs a year; default to the current one as a
	// best-effort fallback.
	if strings.Count(value, "/") == 1 && len(value) <= 5 {
		parts := strings.SplitN(value, "/", 2)
		month, errM := strconv.Atoi(parts[0])
		day, errD := strconv.Atoi(parts[1])
		if errM == nil && errD == nil && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			if year == 0 {
				year = time.Now().Year()
				warns.addfOnce("no report year supplied; assuming %d for short-form dates", year)
			}
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
		return time.Time{}, false
	}

	for _, layout := range []string{"2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return midnight(t), true
		}
	}

	return time.Time{}, false
}

// extractClock parses a punch cell, stripping embedded asterisk noise.
// Unparseable text is a missing punch, never an error.
func extractClock(value string) *report.ClockTime {
	value = strings.TrimSpace(strings.ReplaceAll(value, "*", ""))
	if value == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		// Native time cells are day fractions; datetime cells carry a
		// serial date part too.
		if serial < 0 {
			return nil
		}
		if serial < 1 {
			secs := int(serial*86400 + 0.5)
			return &report.ClockTime{Hour: secs / 3600, Minute: (secs % 3600) / 60, Second: secs % 60}
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		h, m, s := t.Round(time.Second).Clock()
		return &report.ClockTime{Hour: h, Minute: m, Second: s}
	}

	for _, layout := range []string{"15:04:05", "15:04", "3:04 PM", "3:04:05 PM"} {
		if t, err := time.Parse(layout, value); err == nil {
			h, m, s := t.Clock()
			return &report.ClockTime{Hour: h, Minute: m, Second: s}
		}
	}

	return nil
}

func cleanName(name string) string {
	return strings.TrimSpace(nameNoisePattern.ReplaceAllString(name, ""))
}

// cleanSheetTitle strips the filler characters exports pad sheet
// titles with before the title can serve as an employee name.
func cleanSheetTitle(title string) string {
	return strings.TrimRight(strings.TrimSpace(title), " _-$　")
}

func cellAt(cells []string, col int) string {
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// warnings collects row-level diagnostics for the caller. The engine
// has no hidden logger; whoever runs the pipeline decides what to do
// with these.
type warnings struct {
	list []string
	seen map[string]struct{}
}

func (w *warnings) addf(format string, args ...any) {
	w.list = append(w.list, fmt.Sprintf(format, args...))
}

func (w *warnings) addfOnce(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if w.seen == nil {
		w.seen = make(map[string]struct{})
	}
	if _, dup := w.seen[msg]; dup {
		return
	}
	w.seen[msg] = struct{}{}
	w.list = append(w.list, msg)
}
