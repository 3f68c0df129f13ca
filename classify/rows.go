package classify

import (
	"fmt"
	"strings"

	"github.com/Shudderr/timesheet-parser/model"
)

// Config holds the classification thresholds.
type Config struct {
	Patterns Patterns

	// DateRowMinMatches is how many cells must carry a date for a row to
	// count as the date header row.
	DateRowMinMatches int

	// TimeRowMinMatches is how many cells must carry a shift range for a
	// row to count as a shift-time row.
	TimeRowMinMatches int
}

// DefaultConfig returns thresholds tuned for a five-day sheet: the date
// row may miss one column, shift-time rows may miss two.
func DefaultConfig() Config {
	return Config{
		Patterns:          DefaultPatterns(),
		DateRowMinMatches: 4,
		TimeRowMinMatches: 3,
	}
}

// Classifier inspects grid row cells and extracts their payloads.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// Configure sets the classifier configuration.
func (c *Classifier) Configure(config Config) error {
	if config.Patterns.Date == nil || config.Patterns.Time == nil || config.Patterns.WeekEnding == nil {
		return fmt.Errorf("classify: all patterns must be set")
	}
	if config.DateRowMinMatches < 1 || config.TimeRowMinMatches < 1 {
		return fmt.Errorf("classify: match thresholds must be at least 1")
	}
	c.config = config
	return nil
}

// IsDateRow reports whether enough cells carry a date to make this the
// sheet's date header row.
func (c *Classifier) IsDateRow(cells []string) bool {
	n := 0
	for _, cell := range cells {
		if c.config.Patterns.Date.MatchString(cell) {
			n++
		}
	}
	return n >= c.config.DateRowMinMatches
}

// Dates extracts the per-column dates from a date header row. Cells
// without a date yield empty strings. Dash separators are normalized to
// dots, so "01-09-2025" and "01.09.2025" read the same downstream.
func (c *Classifier) Dates(cells []string) []string {
	dates := make([]string, len(cells))
	for i, cell := range cells {
		m := c.config.Patterns.Date.FindStringSubmatch(cell)
		if m == nil {
			continue
		}
		dates[i] = strings.ReplaceAll(m[1], "-", ".")
	}
	return dates
}

// IsTimeRow reports whether enough cells carry a shift range.
func (c *Classifier) IsTimeRow(cells []string) bool {
	n := 0
	for _, cell := range cells {
		if c.config.Patterns.Time.MatchString(cell) {
			n++
		}
	}
	return n >= c.config.TimeRowMinMatches
}

// TimeRanges extracts the per-column shift ranges from a shift-time row.
// Cells without a range yield nil entries.
func (c *Classifier) TimeRanges(cells []string) []*model.TimeRange {
	ranges := make([]*model.TimeRange, len(cells))
	for i, cell := range cells {
		m := c.config.Patterns.Time.FindStringSubmatch(cell)
		if m == nil {
			continue
		}
		ranges[i] = &model.TimeRange{Start: m[1], End: m[2]}
	}
	return ranges
}

// WeekEnding extracts the week-ending date from the full page text, or ""
// when the page has none. The value is kept exactly as printed.
func (c *Classifier) WeekEnding(text string) string {
	m := c.config.Patterns.WeekEnding.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
