package grid

import (
	"math"
	"sort"
	"strings"

	"github.com/Shudderr/timesheet-parser/model"
)

// Row is one horizontal band of the sheet. Cells holds the joined text of
// each weekday column, left to right; Area holds the joined text of tokens
// left of the first column boundary.
type Row struct {
	Key   int
	Cells []string
	Area  string
}

// Grouper assembles tokens into rows keyed by rounded top coordinate.
type Grouper struct {
	config Config
}

// NewGrouper creates a row grouper with default configuration.
func NewGrouper() *Grouper {
	return &Grouper{config: DefaultConfig()}
}

// Configure sets the grouper configuration.
func (g *Grouper) Configure(config Config) error {
	g.config = config
	return nil
}

// Rows groups tokens into rows and assembles cell text using the given
// column boundaries. Weekday header tokens and blank tokens are skipped.
// Rows come back in top-to-bottom order; within a row, tokens are joined
// left to right with single spaces.
func (g *Grouper) Rows(tokens []model.Token, bounds Boundaries) []Row {
	if bounds.Columns() == 0 {
		return nil
	}

	skip := make(map[string]bool, len(g.config.Weekdays))
	for _, name := range g.config.Weekdays {
		skip[name] = true
	}

	byKey := make(map[int][]model.Token)
	for _, tok := range tokens {
		if skip[tok.Text] || strings.TrimSpace(tok.Text) == "" {
			continue
		}
		key := int(math.Round(tok.Top))
		byKey[key] = append(byKey[key], tok)
	}

	keys := make([]int, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		group := byKey[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].X0 < group[j].X0
		})

		row := Row{Key: key, Cells: make([]string, bounds.Columns())}
		for _, tok := range group {
			center := tok.Center()
			if center < bounds[0] {
				row.Area = joinCell(row.Area, tok.Text)
				continue
			}
			if ci := bounds.Index(center); ci >= 0 {
				row.Cells[ci] = joinCell(row.Cells[ci], tok.Text)
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func joinCell(existing, text string) string {
	if existing == "" {
		return text
	}
	return existing + " " + text
}
