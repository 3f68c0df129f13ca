package grid

import (
	"fmt"
	"sort"

	"github.com/Shudderr/timesheet-parser/model"
)

// Boundaries holds the column edges of a detected layout. A layout with N
// columns has N+1 strictly increasing values; column i spans the half-open
// interval [b[i], b[i+1]).
type Boundaries []float64

// Columns returns the number of columns the boundaries describe.
func (b Boundaries) Columns() int {
	if len(b) < 2 {
		return 0
	}
	return len(b) - 1
}

// Index returns the column whose interval contains x, or -1 when x falls
// outside every column.
func (b Boundaries) Index(x float64) int {
	for i := 0; i < len(b)-1; i++ {
		if x >= b[i] && x < b[i+1] {
			return i
		}
	}
	return -1
}

// Config holds the layout parameters shared by [Detector] and [Grouper].
type Config struct {
	// Weekdays are the header texts to look for, in weekday order.
	// Matching is exact and case sensitive.
	Weekdays []string
}

// DefaultConfig returns the configuration for a standard five-day sheet.
func DefaultConfig() Config {
	return Config{
		Weekdays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
}

// Detector infers column boundaries from the positions of the weekday
// header tokens.
type Detector struct {
	config Config
}

// NewDetector creates a layout detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// Configure sets the detector configuration. At least two weekday names are
// required, since the outer bounds are mirrored from inter-column gaps.
func (d *Detector) Configure(config Config) error {
	if len(config.Weekdays) < 2 {
		return fmt.Errorf("grid: need at least 2 weekday names, got %d", len(config.Weekdays))
	}
	d.config = config
	return nil
}

// Detect finds the weekday header tokens and derives column boundaries from
// their horizontal centers. The first occurrence of each weekday name wins.
// It returns nil when fewer than the configured number of distinct weekday
// headers are present, or when the header geometry is degenerate.
func (d *Detector) Detect(tokens []model.Token) Boundaries {
	want := make(map[string]bool, len(d.config.Weekdays))
	for _, name := range d.config.Weekdays {
		want[name] = true
	}

	headers := make(map[string]model.Token, len(d.config.Weekdays))
	for _, tok := range tokens {
		if !want[tok.Text] {
			continue
		}
		if _, seen := headers[tok.Text]; !seen {
			headers[tok.Text] = tok
		}
	}
	if len(headers) < len(d.config.Weekdays) {
		return nil
	}

	centers := make([]float64, 0, len(headers))
	for _, tok := range headers {
		centers = append(centers, tok.Center())
	}
	sort.Float64s(centers)
	if len(centers) < 2 {
		return nil
	}

	inner := make([]float64, len(centers)-1)
	for i := range inner {
		inner[i] = (centers[i] + centers[i+1]) / 2
	}
	left := centers[0] - (inner[0] - centers[0])
	right := centers[len(centers)-1] + (centers[len(centers)-1] - inner[len(inner)-1])

	bounds := make(Boundaries, 0, len(centers)+1)
	bounds = append(bounds, left)
	bounds = append(bounds, inner...)
	bounds = append(bounds, right)

	// Coincident header centers collapse adjacent intervals.
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return nil
		}
	}

	return bounds
}
