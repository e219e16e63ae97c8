package staff

import (
	"strings"
	"time"
)

// Regime is the work-schedule class of a staff member.
type Regime string

const (
	RegimeInternal Regime = "internal" // office staff, Mon-Fri
	RegimeExternal Regime = "external" // field staff, Mon/Wed/Fri
)

// regimeVocabulary maps roster type labels to regimes. Labels are
// matched case-insensitively; unrecognized labels fall back to internal.
var regimeVocabulary = map[string]Regime{
	"內勤":       RegimeInternal,
	"internal": RegimeInternal,
	"外勤":       RegimeExternal,
	"external": RegimeExternal,
}

// ParseRegime maps a roster type label to a Regime. Unrecognized
// labels default to RegimeInternal.
func ParseRegime(label string) Regime {
	label = strings.TrimSpace(label)
	if r, ok := regimeVocabulary[label]; ok {
		return r
	}
	if r, ok := regimeVocabulary[strings.ToLower(label)]; ok {
		return r
	}
	return RegimeInternal
}

// Label returns the native roster vocabulary for the regime, used when
// appending entries back to the roster file.
func (r Regime) Label() string {
	if r == RegimeExternal {
		return "外勤"
	}
	return "內勤"
}

type Staff struct {
	Name         string
	Regime       Regime
	WorkWeekdays []time.Weekday
}

// NewStaff builds a Staff, applying the regime's default work weekdays
// when none are supplied. Every Staff has a non-empty WorkWeekdays.
func NewStaff(name string, regime Regime, workWeekdays ...time.Weekday) Staff {
	if len(workWeekdays) == 0 {
		switch regime {
		case RegimeExternal:
			workWeekdays = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
		default:
			workWeekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
		}
	}
	return Staff{Name: name, Regime: regime, WorkWeekdays: workWeekdays}
}

// ShouldWorkOn reports whether the staff member is scheduled to work
// on the given calendar day, ignoring holidays.
func (s Staff) ShouldWorkOn(day time.Time) bool {
	wd := day.Weekday()
	for _, w := range s.WorkWeekdays {
		if w == wd {
			return true
		}
	}
	return false
}
