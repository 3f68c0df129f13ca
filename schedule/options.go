package schedule

import "github.com/Shudderr/timesheet-parser/classify"

// Options configures a single extraction run.
type Options struct {
	// TargetName is the employee to look for. Matching is a case
	// insensitive substring test, so "Rohan" also hits "Jane Rohan".
	TargetName string

	// Weekdays are the column header names in weekday order. They double
	// as the keys of the resulting WeekRecord.Days map. Empty means
	// Monday through Friday.
	Weekdays []string

	// Patterns drive row classification. Nil entries fall back to
	// classify.DefaultPatterns.
	Patterns classify.Patterns

	// NoteMarkers are flag words recorded into a day's note when they
	// appear in a matched cell. Matching is case insensitive. Nil means
	// the default {"ATM"}; an empty non-nil slice disables markers.
	NoteMarkers []string

	// DateRowMinMatches and TimeRowMinMatches override the
	// classification thresholds. Zero means the classify defaults.
	DateRowMinMatches int
	TimeRowMinMatches int
}

// DefaultOptions returns options for a standard five-day sheet. TargetName
// is left empty and must be set by the caller.
func DefaultOptions() Options {
	return Options{
		Weekdays:    []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		Patterns:    classify.DefaultPatterns(),
		NoteMarkers: []string{"ATM"},
	}
}

func (o Options) withDefaults() Options {
	def := classify.DefaultPatterns()
	if len(o.Weekdays) == 0 {
		o.Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	}
	if o.Patterns.Date == nil {
		o.Patterns.Date = def.Date
	}
	if o.Patterns.Time == nil {
		o.Patterns.Time = def.Time
	}
	if o.Patterns.WeekEnding == nil {
		o.Patterns.WeekEnding = def.WeekEnding
	}
	if o.NoteMarkers == nil {
		o.NoteMarkers = []string{"ATM"}
	}
	if o.DateRowMinMatches == 0 {
		o.DateRowMinMatches = 4
	}
	if o.TimeRowMinMatches == 0 {
		o.TimeRowMinMatches = 3
	}
	return o
}
