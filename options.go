package timesheet

import (
	"github.com/Shudderr/timesheet-parser/classify"
	"github.com/Shudderr/timesheet-parser/schedule"
)

// cloneOptions deep-copies the slice-valued option fields so chained
// parsers never share backing arrays. A nil marker slice stays nil,
// keeping the default-marker behavior distinct from explicitly
// disabled markers.
func cloneOptions(o schedule.Options) schedule.Options {
	c := o
	c.Weekdays = append([]string(nil), o.Weekdays...)
	if o.NoteMarkers != nil {
		c.NoteMarkers = append([]string{}, o.NoteMarkers...)
	}
	return c
}

// Target sets the employee name whose shifts are extracted. Matching is
// case-insensitive and tolerates the name being embedded in longer cell
// text, so "Rohan" also matches a "Jane Rohan" cell.
//
// Example:
//
//	week, err := timesheet.Open("roster.pdf").Target("Rohan").Week()
func (p *Parser) Target(name string) *Parser {
	np := p.clone()
	np.options.TargetName = name
	return np
}

// Weekdays overrides the column header labels, in display order. The
// labels double as the keys of the resulting WeekRecord.Days map.
// Calling Weekdays with no arguments restores the Monday through
// Friday default.
//
// Example:
//
//	week, err := timesheet.Open("dienstplan.pdf").
//	    Target("Anna").
//	    Weekdays("Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag").
//	    Week()
func (p *Parser) Weekdays(days ...string) *Parser {
	np := p.clone()
	np.options.Weekdays = append([]string(nil), days...)
	return np
}

// Markers overrides the duty markers collected as day notes. Calling
// Markers with no arguments disables note collection.
func (p *Parser) Markers(markers ...string) *Parser {
	np := p.clone()
	np.options.NoteMarkers = append([]string{}, markers...)
	return np
}

// Patterns overrides the regular expressions used to classify date and
// shift-time rows; see classify.DefaultPatterns for the stock set.
// Nil fields keep their defaults.
func (p *Parser) Patterns(patterns classify.Patterns) *Parser {
	np := p.clone()
	np.options.Patterns = patterns
	return np
}
