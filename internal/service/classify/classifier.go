// Package classify turns a raw day's punches into an attendance
// status, remark and cell emphasis under a regime's time rule. The two
// regimes keep textually separate rule sets so their divergent
// tolerance policies stay auditable.
package classify

import (
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
)

type ruleSet struct {
	determineStatus func(in, out *report.ClockTime, rule report.TimeRule) report.Status
	cellColors      func(in, out *report.ClockTime, rule report.TimeRule, colors report.ColorRule) (string, string)
}

var ruleSets = map[staff.Regime]ruleSet{
	staff.RegimeInternal: {
		determineStatus: internalStatus,
		cellColors:      internalColors,
	},
	staff.RegimeExternal: {
		determineStatus: externalStatus,
		cellColors:      externalColors,
	},
}

func rulesFor(regime staff.Regime) ruleSet {
	if rs, ok := ruleSets[regime]; ok {
		return rs
	}
	return ruleSets[staff.RegimeInternal]
}

// Classify derives a fully-populated attendance record from a raw row.
// The record is immutable once returned.
func Classify(raw report.RawRow, regime staff.Regime, rule report.TimeRule) report.AttendanceRecord {
	return report.AttendanceRecord{
		Date:     raw.Date,
		CheckIn:  raw.CheckIn,
		CheckOut: raw.CheckOut,
		Status:   rulesFor(regime).determineStatus(raw.CheckIn, raw.CheckOut, rule),
		Remark:   remark(raw.CheckOut, rule),
	}
}

// CellColors derives the in/out cell emphasis for the renderer. Pure
// side-channel query; empty string means no emphasis.
func CellColors(rec report.AttendanceRecord, regime staff.Regime, rule report.TimeRule, colors report.ColorRule) (inColor, outColor string) {
	return rulesFor(regime).cellColors(rec.CheckIn, rec.CheckOut, rule, colors)
}

// Internal staff: late when checking in after in_end, early leave when
// checking out before out_start, both at once is abnormal.
func internalStatus(in, out *report.ClockTime, rule report.TimeRule) report.Status {
	if in == nil && out == nil {
		return report.StatusAbsent
	}

	isLate := in != nil && in.After(rule.InEnd)
	isEarly := out != nil && out.Before(rule.OutStart)

	switch {
	case isLate && isEarly:
		return report.StatusAbnormal
	case isLate:
		return report.StatusLate
	case isEarly:
		return report.StatusEarlyLeave
	default:
		return report.StatusNormal
	}
}

// External staff: only the check-in is judged. Checkout timing is
// never penalized; a late checkout only earns the delayed remark.
func externalStatus(in, out *report.ClockTime, rule report.TimeRule) report.Status {
	if in == nil && out == nil {
		return report.StatusAbsent
	}

	if in != nil && in.After(rule.InEnd) {
		return report.StatusLate
	}
	return report.StatusNormal
}

// remark flags a delayed checkout independently of status; the rule is
// the same for both regimes.
func remark(out *report.ClockTime, rule report.TimeRule) string {
	if out != nil && out.After(rule.OutEnd) {
		return report.RemarkDelayedCheckout
	}
	return ""
}

func internalColors(in, out *report.ClockTime, rule report.TimeRule, colors report.ColorRule) (string, string) {
	if in == nil && out == nil {
		return "", ""
	}

	inColor, outColor := "", ""
	if in != nil {
		if in.After(rule.InEnd) {
			inColor = colors.AbnormalIn
		} else {
			inColor = colors.NormalIn
		}
	}
	if out != nil {
		if out.Before(rule.OutStart) {
			outColor = colors.AbnormalOut
		} else {
			outColor = colors.NormalOut
		}
	}
	return inColor, outColor
}

func externalColors(in, out *report.ClockTime, rule report.TimeRule, colors report.ColorRule) (string, string) {
	if in == nil && out == nil {
		return "", ""
	}

	inColor, outColor := "", ""
	if in != nil {
		if in.After(rule.InEnd) {
			inColor = colors.AbnormalIn
		} else {
			inColor = colors.NormalIn
		}
	}
	// Checkout is never judged for external staff, so a present punch
	// always reads as normal.
	if out != nil {
		outColor = colors.NormalOut
	}
	return inColor, outColor
}
