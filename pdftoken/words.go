package pdftoken

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Shudderr/timesheet-parser/model"
)

// Config holds the word assembly tunables.
type Config struct {
	// LineTolerance is the maximum baseline difference, in points, for
	// two glyph runs to count as the same line.
	LineTolerance float64

	// GapTolerance is the maximum horizontal gap, in points, bridged
	// inside one word. Runs further apart start a new word.
	GapTolerance float64
}

// DefaultConfig returns assembly tunables that suit common office PDFs.
func DefaultConfig() Config {
	return Config{
		LineTolerance: 2.0,
		GapTolerance:  3.0,
	}
}

// fragment is one glyph run after whitespace splitting.
type fragment struct {
	text string
	x    float64
	w    float64
	y    float64
	size float64
}

// assembleWords merges glyph runs into word tokens and flips them from
// bottom-up PDF space into top-down page space.
func assembleWords(texts []pdf.Text, pageHeight float64, config Config) []model.Token {
	frags := splitRuns(texts)
	if len(frags) == 0 {
		return nil
	}

	lines := groupLines(frags, config.LineTolerance)

	var tokens []model.Token
	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].x < line[j].x
		})

		cur := line[0]
		flush := func() {
			tokens = append(tokens, model.Token{
				Text:   nfc(cur.text),
				X0:     cur.x,
				X1:     cur.x + cur.w,
				Top:    pageHeight - cur.y - cur.size,
				Bottom: pageHeight - cur.y,
			})
		}
		for _, f := range line[1:] {
			gap := f.x - (cur.x + cur.w)
			if gap > config.GapTolerance {
				flush()
				cur = f
				continue
			}
			cur.text += f.text
			cur.w = f.x + f.w - cur.x
			if f.size > cur.size {
				cur.size = f.size
			}
		}
		flush()
	}

	return tokens
}

// splitRuns drops whitespace-only runs and breaks runs with embedded
// spaces apart, apportioning width by rune count.
func splitRuns(texts []pdf.Text) []fragment {
	frags := make([]fragment, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		if !strings.ContainsAny(t.S, " \t") {
			frags = append(frags, fragment{text: t.S, x: t.X, w: t.W, y: t.Y, size: t.FontSize})
			continue
		}

		runes := []rune(t.S)
		perRune := t.W / float64(len(runes))
		start := -1
		for i := 0; i <= len(runes); i++ {
			atEnd := i == len(runes)
			isSpace := !atEnd && (runes[i] == ' ' || runes[i] == '\t')
			switch {
			case !atEnd && !isSpace && start < 0:
				start = i
			case (atEnd || isSpace) && start >= 0:
				frags = append(frags, fragment{
					text: string(runes[start:i]),
					x:    t.X + float64(start)*perRune,
					w:    float64(i-start) * perRune,
					y:    t.Y,
					size: t.FontSize,
				})
				start = -1
			}
		}
	}
	return frags
}

// groupLines clusters fragments by baseline, preserving first-seen order
// of lines.
func groupLines(frags []fragment, tolerance float64) [][]fragment {
	var lines [][]fragment
	var baselines []float64

	for _, f := range frags {
		placed := false
		for i, y := range baselines {
			if abs(y-f.y) <= tolerance {
				lines[i] = append(lines[i], f)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, []fragment{f})
			baselines = append(baselines, f.y)
		}
	}
	return lines
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
