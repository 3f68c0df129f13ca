package model

import (
	"strconv"
	"strings"
)

// TimeRange is a shift window as printed on the sheet, e.g. 9:00 to 17:30.
// Values stay as clock text; no date or timezone is attached.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StartMinutes returns the start time as minutes past midnight. Text that
// does not look like "H:MM" counts as zero.
func (tr TimeRange) StartMinutes() int {
	return ClockMinutes(tr.Start)
}

// ClockMinutes converts "H:MM" clock text to minutes past midnight.
// Malformed input returns zero.
func ClockMinutes(s string) int {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0
	}
	return h*60 + m
}

// DayInfo is the resolved schedule for one weekday. Pointer fields encode
// absence: a nil Start marshals to JSON null. Date is the column date from
// the sheet's date row, empty when the sheet has none.
type DayInfo struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
	Note  *string `json:"note"`
	Date  string  `json:"date"`
	Area  *string `json:"area"`
}

// WeekRecord is one employee's reconstructed week.
type WeekRecord struct {
	WeekEnding *string            `json:"week_ending"`
	Dates      []string           `json:"dates"`
	Days       map[string]DayInfo `json:"days"`
}
