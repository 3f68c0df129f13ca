package classify

import "regexp"

// Patterns holds the compiled expressions that drive row classification.
type Patterns struct {
	// Date matches a column date such as "01.09.2025". The first capture
	// group is the date text; separators may be ".", "/" or "-".
	Date *regexp.Regexp

	// Time matches a shift range such as "9:00 - 17:30". The first capture
	// group is the start clock text, the second the end.
	Time *regexp.Regexp

	// WeekEnding matches the page-level week ending line. The first
	// capture group is the date text.
	WeekEnding *regexp.Regexp
}

// DefaultPatterns returns the stock timesheet patterns.
func DefaultPatterns() Patterns {
	return Patterns{
		Date:       regexp.MustCompile(`(\d{2}[./-]\d{2}[./-]\d{4})`),
		Time:       regexp.MustCompile(`(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`),
		WeekEnding: regexp.MustCompile(`Week ending (\d{2}/\d{2}/\d{4})`),
	}
}
