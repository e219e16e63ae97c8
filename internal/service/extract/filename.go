package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Export filenames look like MonRepyymmdd, e.g. MonRep251201 for a
// December 2025 report.
var reportFilenamePattern = regexp.MustCompile(`^MonRep(\d{2})(\d{2})(\d{2})`)

// ParseReportFilename extracts the report year and month from an
// export filename. The day component is present but unused.
func ParseReportFilename(filename string) (int, time.Month, error) {
	m := reportFilenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return 0, 0, fmt.Errorf("filename %q does not match MonRepyymmdd", filename)
	}

	yy, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if mm < 1 || mm > 12 {
		return 0, 0, fmt.Errorf("filename %q carries invalid month %d", filename, mm)
	}

	return 2000 + yy, time.Month(mm), nil
}

// TryParseReportFilename is the non-failing variant used to seed the
// year for short-form dates; parse failure here is never fatal.
func TryParseReportFilename(filename string) (int, time.Month, bool) {
	year, month, err := ParseReportFilename(filename)
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}
