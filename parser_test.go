package timesheet

import (
	"errors"
	"strings"
	"testing"

	"github.com/Shudderr/timesheet-parser/model"
	"github.com/Shudderr/timesheet-parser/schedule"
)

// Helper to build a token spanning [x0, x1] at the given top
func tok(text string, x0, x1, top float64) model.Token {
	return model.Token{Text: text, X0: x0, X1: x1, Top: top, Bottom: top + 10}
}

// Helper to drop a token into a weekday column; columns have centers
// 100, 200, 300, 400, 500
func cellTok(text string, col int, top float64) model.Token {
	center := float64(100 + col*100)
	return tok(text, center-20, center+20, top)
}

// Five weekday headers at top 40, centers 100..500
func headerTokens(labels ...string) []model.Token {
	if len(labels) == 0 {
		labels = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	}
	tokens := make([]model.Token, len(labels))
	for i, label := range labels {
		tokens[i] = cellTok(label, i, 40)
	}
	return tokens
}

// Helper to build a page with headers, dates, one shift row and the
// target's name in the given column
func rosterTokens(name string, col int) []model.Token {
	tokens := headerTokens()
	for i, d := range []string{"01.09.2025", "02.09.2025", "03.09.2025", "04.09.2025", "05.09.2025"} {
		tokens = append(tokens, cellTok(d, i, 60))
	}
	for i := 0; i < 5; i++ {
		tokens = append(tokens, cellTok("9:00 - 17:00", i, 80))
	}
	tokens = append(tokens, cellTok(name, col, 100))
	return tokens
}

// Helper to assemble page text from tokens plus extra lines
func pageText(tokens []model.Token, extra ...string) string {
	parts := make([]string, 0, len(tokens)+len(extra))
	for _, t := range tokens {
		parts = append(parts, t.Text)
	}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func TestOpen_NonexistentFile(t *testing.T) {
	_, err := Open("nonexistent.pdf").Target("Rohan").Week()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestWeek_NoInput(t *testing.T) {
	var p Parser
	if _, err := p.Week(); err == nil {
		t.Error("expected error when no input was specified")
	}
}

func TestFromTokens_Week(t *testing.T) {
	tokens := rosterTokens("Rohan", 0)
	text := pageText(tokens, "Week ending 05/09/2025")

	rec, err := FromTokens(tokens, text).Target("Rohan").Week()
	if err != nil {
		t.Fatalf("Week() error = %v", err)
	}

	if rec.WeekEnding == nil || *rec.WeekEnding != "05/09/2025" {
		t.Errorf("WeekEnding = %v, want 05/09/2025", rec.WeekEnding)
	}
	mon := rec.Days["Monday"]
	if mon.Start == nil || *mon.Start != "9:00" {
		t.Errorf("Monday.Start = %v, want 9:00", mon.Start)
	}
	if mon.End == nil || *mon.End != "17:00" {
		t.Errorf("Monday.End = %v, want 17:00", mon.End)
	}
	tue := rec.Days["Tuesday"]
	if tue.Start != nil {
		t.Errorf("Tuesday.Start = %v, want null", tue.Start)
	}
}

func TestFromTokens_WeekIsRepeatable(t *testing.T) {
	tokens := rosterTokens("Rohan", 2)
	p := FromTokens(tokens, pageText(tokens)).Target("Rohan")

	first, err := p.Week()
	if err != nil {
		t.Fatalf("first Week() error = %v", err)
	}
	second, err := p.Week()
	if err != nil {
		t.Fatalf("second Week() error = %v", err)
	}

	if *first.Days["Wednesday"].Start != *second.Days["Wednesday"].Start {
		t.Error("expected repeated extraction to return the same schedule")
	}
}

func TestTargetNotFound(t *testing.T) {
	tokens := rosterTokens("Dana", 0)

	_, err := FromTokens(tokens, pageText(tokens)).Target("Rohan").Week()
	if !errors.Is(err, schedule.ErrTargetNotPresent) {
		t.Errorf("expected ErrTargetNotPresent, got %v", err)
	}
	if !errors.Is(err, schedule.ErrNoMatch) {
		t.Errorf("expected error to wrap ErrNoMatch, got %v", err)
	}
}

func TestChaining_Immutability(t *testing.T) {
	tokens := rosterTokens("Rohan", 0)
	base := FromTokens(tokens, pageText(tokens))

	forRohan := base.Target("Rohan")
	forDana := base.Target("Dana")

	if _, err := forRohan.Week(); err != nil {
		t.Errorf("Rohan parser failed: %v", err)
	}
	if _, err := forDana.Week(); !errors.Is(err, schedule.ErrTargetNotPresent) {
		t.Errorf("Dana parser: expected ErrTargetNotPresent, got %v", err)
	}
	if base.options.TargetName != "" {
		t.Errorf("base parser was mutated: TargetName = %q", base.options.TargetName)
	}
}

func TestWeekdays_Override(t *testing.T) {
	labels := []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"}
	tokens := headerTokens(labels...)
	for i := 0; i < 5; i++ {
		tokens = append(tokens, cellTok("8:00 - 14:00", i, 80))
	}
	tokens = append(tokens, cellTok("Anna", 1, 100))

	rec, err := FromTokens(tokens, pageText(tokens)).
		Target("Anna").
		Weekdays(labels...).
		Week()
	if err != nil {
		t.Fatalf("Week() error = %v", err)
	}

	di := rec.Days["Dienstag"]
	if di.Start == nil || *di.Start != "8:00" {
		t.Errorf("Dienstag.Start = %v, want 8:00", di.Start)
	}
	if _, ok := rec.Days["Tuesday"]; ok {
		t.Error("expected English day keys to be absent")
	}
}

func TestMarkers_Disabled(t *testing.T) {
	tokens := rosterTokens("Rohan", 0)
	tokens = append(tokens, cellTok("Rohan ATM", 0, 112))

	rec, err := FromTokens(tokens, pageText(tokens)).
		Target("Rohan").
		Markers().
		Week()
	if err != nil {
		t.Fatalf("Week() error = %v", err)
	}

	if note := rec.Days["Monday"].Note; note != nil {
		t.Errorf("Monday.Note = %q, want null with markers disabled", *note)
	}
}

func TestMarkers_Custom(t *testing.T) {
	tokens := rosterTokens("Rohan", 0)
	tokens = append(tokens, cellTok("Rohan TILL", 4, 112))

	rec, err := FromTokens(tokens, pageText(tokens)).
		Target("Rohan").
		Markers("TILL").
		Week()
	if err != nil {
		t.Fatalf("Week() error = %v", err)
	}

	note := rec.Days["Friday"].Note
	if note == nil || *note != "TILL" {
		t.Errorf("Friday.Note = %v, want TILL", note)
	}
}

func TestClose_Idempotent(t *testing.T) {
	p := FromTokens(nil, "")
	if err := p.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestMust(t *testing.T) {
	tokens := rosterTokens("Rohan", 0)
	rec := Must(FromTokens(tokens, pageText(tokens)).Target("Rohan").Week())
	if rec == nil {
		t.Fatal("Must returned nil record")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected Must to panic on error")
		}
	}()
	Must(FromTokens(nil, "").Target("Rohan").Week())
}
