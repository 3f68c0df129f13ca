package schedule

import (
	"sort"
	"strings"

	"github.com/Shudderr/timesheet-parser/model"
)

// ResolveDay folds one weekday's captures and note flags into a DayInfo.
//
// When the sheet stacks several shift blocks, the capture with the latest
// start time wins; ties keep the capture seen first on the page. No
// captures means null start, end and area. Flags are deduplicated, sorted
// and comma-joined; date is passed through as-is.
func ResolveDay(captures []Capture, flags []string, date string) model.DayInfo {
	info := model.DayInfo{Date: date}

	if len(captures) > 0 {
		best := 0
		for i := 1; i < len(captures); i++ {
			if captures[i].Range.StartMinutes() > captures[best].Range.StartMinutes() {
				best = i
			}
		}
		win := captures[best]
		info.Start = &win.Range.Start
		info.End = &win.Range.End
		if win.Area != "" {
			info.Area = &win.Area
		}
	}

	info.Note = foldFlags(flags)
	return info
}

// foldFlags joins unique flags in sorted order, or returns nil when there
// are none.
func foldFlags(flags []string) *string {
	if len(flags) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(flags))
	uniq := make([]string, 0, len(flags))
	for _, f := range flags {
		if !seen[f] {
			seen[f] = true
			uniq = append(uniq, f)
		}
	}
	sort.Strings(uniq)

	s := strings.Join(uniq, ", ")
	return &s
}
