package schedule

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Shudderr/timesheet-parser/classify"
	"github.com/Shudderr/timesheet-parser/grid"
	"github.com/Shudderr/timesheet-parser/model"
)

// Capture records one sighting of the target employee: the shift range in
// force for the weekday column and the area label in force for the row.
type Capture struct {
	Range model.TimeRange
	Area  string
}

// walkState is the sticky state of the row walk: the shift ranges of the
// most recent shift-time row (nil until one is seen) and the most recent
// non-empty area label.
type walkState struct {
	ranges []*model.TimeRange
	area   string
}

// Extract reconstructs the target employee's week from one page of
// positioned tokens and its full text.
//
// Tokens and text must come from the same page of the same document;
// fullText is used for the target short-circuit and the week-ending date,
// the tokens for everything positional. A panic during extraction is
// converted into an error wrapping [ErrNoMatch]; a record and an error are
// never returned together.
func Extract(tokens []model.Token, fullText string, opts Options) (rec *model.WeekRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = fmt.Errorf("%w: internal error: %v", ErrNoMatch, r)
		}
	}()

	if opts.TargetName == "" {
		return nil, fmt.Errorf("schedule: target name required")
	}
	opts = opts.withDefaults()

	target := strings.ToLower(norm.NFC.String(opts.TargetName))
	if !strings.Contains(strings.ToLower(fullText), target) {
		return nil, ErrTargetNotPresent
	}

	cls := classify.NewClassifier()
	if err := cls.Configure(classify.Config{
		Patterns:          opts.Patterns,
		DateRowMinMatches: opts.DateRowMinMatches,
		TimeRowMinMatches: opts.TimeRowMinMatches,
	}); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	weekEnding := cls.WeekEnding(fullText)

	layout := grid.Config{Weekdays: opts.Weekdays}
	detector := grid.NewDetector()
	if err := detector.Configure(layout); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	bounds := detector.Detect(tokens)
	if bounds == nil {
		return nil, ErrLayoutNotDetected
	}

	grouper := grid.NewGrouper()
	if err := grouper.Configure(layout); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	rows := grouper.Rows(tokens, bounds)

	days := len(opts.Weekdays)
	dates := datesFromRows(cls, rows, days)
	captures, flags := collect(rows, cls, target, opts.NoteMarkers, days)

	rec = &model.WeekRecord{
		Dates: dates,
		Days:  make(map[string]model.DayInfo, days),
	}
	if weekEnding != "" {
		rec.WeekEnding = &weekEnding
	}
	for i, day := range opts.Weekdays {
		date := ""
		if i < len(dates) {
			date = dates[i]
		}
		rec.Days[day] = ResolveDay(captures[i], flags[i], date)
	}
	return rec, nil
}

// datesFromRows returns the per-column dates of the first date header row,
// or empty strings when the sheet has none.
func datesFromRows(cls *classify.Classifier, rows []grid.Row, days int) []string {
	for _, row := range rows {
		if cls.IsDateRow(row.Cells) {
			return cls.Dates(row.Cells)
		}
	}
	return make([]string, days)
}

// collect walks the rows top to bottom and gathers captures and note flags
// per weekday column. The target must already be lowercased.
func collect(rows []grid.Row, cls *classify.Classifier, target string, markers []string, days int) ([][]Capture, [][]string) {
	captures := make([][]Capture, days)
	flags := make([][]string, days)

	upperMarkers := make([]string, len(markers))
	for i, m := range markers {
		upperMarkers[i] = strings.ToUpper(m)
	}

	var state walkState
	for _, row := range rows {
		if row.Area != "" {
			state.area = row.Area
		}
		if cls.IsTimeRow(row.Cells) {
			state.ranges = cls.TimeRanges(row.Cells)
			continue
		}
		if state.ranges == nil {
			continue
		}

		for i := 0; i < days && i < len(row.Cells) && i < len(state.ranges); i++ {
			cell := strings.TrimSpace(row.Cells[i])
			if cell == "" || !strings.Contains(strings.ToLower(cell), target) {
				continue
			}
			if r := state.ranges[i]; r != nil {
				captures[i] = append(captures[i], Capture{Range: *r, Area: state.area})
			}
			upper := strings.ToUpper(cell)
			for j, m := range upperMarkers {
				if strings.Contains(upper, m) {
					flags[i] = append(flags[i], markers[j])
				}
			}
		}
	}
	return captures, flags
}
