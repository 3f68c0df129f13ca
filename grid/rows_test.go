package grid

import (
	"reflect"
	"testing"

	"github.com/Shudderr/timesheet-parser/model"
)

var testBounds = Boundaries{50, 150, 250, 350, 450, 550}

func TestNewGrouper(t *testing.T) {
	g := NewGrouper()
	if g == nil {
		t.Fatal("NewGrouper returned nil")
	}
	if len(g.config.Weekdays) != 5 {
		t.Errorf("Expected 5 default weekdays, got %d", len(g.config.Weekdays))
	}
}

func TestGrouper_RowOrdering(t *testing.T) {
	g := NewGrouper()

	tokens := []model.Token{
		makeToken("third", 90, 110, 300),
		makeToken("first", 90, 110, 100),
		makeToken("second", 90, 110, 200),
	}

	rows := g.Rows(tokens, testBounds)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	keys := []int{rows[0].Key, rows[1].Key, rows[2].Key}
	if !reflect.DeepEqual(keys, []int{100, 200, 300}) {
		t.Errorf("Row keys = %v, want [100 200 300]", keys)
	}
	if rows[0].Cells[0] != "first" || rows[2].Cells[0] != "third" {
		t.Errorf("Rows out of order: %+v", rows)
	}
}

func TestGrouper_CellAssembly(t *testing.T) {
	g := NewGrouper()

	// Two tokens in the same cell join left to right regardless of input order.
	tokens := []model.Token{
		makeToken("Rohan", 115, 135, 100),
		makeToken("Jane", 90, 110, 100),
	}

	rows := g.Rows(tokens, testBounds)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Cells[0] != "Jane Rohan" {
		t.Errorf("Cells[0] = %q, want %q", rows[0].Cells[0], "Jane Rohan")
	}
}

func TestGrouper_RoundedTopClustering(t *testing.T) {
	g := NewGrouper()

	tokens := []model.Token{
		makeToken("a", 90, 110, 99.6),
		makeToken("b", 190, 210, 100.3),
		makeToken("c", 290, 310, 100.9),
	}

	rows := g.Rows(tokens, testBounds)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Key != 100 {
		t.Errorf("rows[0].Key = %d, want 100", rows[0].Key)
	}
	if rows[0].Cells[0] != "a" || rows[0].Cells[1] != "b" {
		t.Errorf("rows[0].Cells = %v, want a and b together", rows[0].Cells)
	}
	if rows[1].Key != 101 || rows[1].Cells[2] != "c" {
		t.Errorf("rows[1] = %+v, want c at key 101", rows[1])
	}
}

func TestGrouper_AreaGutter(t *testing.T) {
	g := NewGrouper()

	tokens := []model.Token{
		makeToken("Front", 10, 30, 100),
		makeToken("Desk", 32, 48, 100),
		makeToken("Jane", 90, 110, 100),
	}

	rows := g.Rows(tokens, testBounds)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Area != "Front Desk" {
		t.Errorf("Area = %q, want %q", rows[0].Area, "Front Desk")
	}
	if rows[0].Cells[0] != "Jane" {
		t.Errorf("Cells[0] = %q, want %q", rows[0].Cells[0], "Jane")
	}
}

func TestGrouper_RightOverflowDropped(t *testing.T) {
	g := NewGrouper()

	tokens := []model.Token{
		makeToken("kept", 490, 510, 100),
		makeToken("dropped", 560, 580, 100),
	}

	rows := g.Rows(tokens, testBounds)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Cells[4] != "kept" {
		t.Errorf("Cells[4] = %q, want %q", rows[0].Cells[4], "kept")
	}
	for i, c := range rows[0].Cells {
		if c == "dropped" {
			t.Errorf("Overflow token landed in column %d", i)
		}
	}
	if rows[0].Area != "" {
		t.Errorf("Area = %q, want empty", rows[0].Area)
	}
}

func TestGrouper_HeaderTokensSkipped(t *testing.T) {
	g := NewGrouper()

	tokens := append(weekdayHeaders(), makeToken("Jane", 90, 110, 100))

	rows := g.Rows(tokens, testBounds)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row (headers skipped), got %d", len(rows))
	}
	if rows[0].Cells[0] != "Jane" {
		t.Errorf("Cells[0] = %q, want %q", rows[0].Cells[0], "Jane")
	}
}

func TestGrouper_BlankTokensSkipped(t *testing.T) {
	g := NewGrouper()

	tokens := []model.Token{
		makeToken("  ", 90, 110, 100),
		makeToken("Jane", 115, 135, 100),
	}

	rows := g.Rows(tokens, testBounds)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Cells[0] != "Jane" {
		t.Errorf("Cells[0] = %q, want %q", rows[0].Cells[0], "Jane")
	}
}

func TestGrouper_Deterministic(t *testing.T) {
	g := NewGrouper()

	tokens := []model.Token{
		makeToken("Jane", 90, 110, 100),
		makeToken("Rohan", 115, 135, 100),
		makeToken("9:00 - 17:00", 190, 230, 80),
		makeToken("Front", 10, 30, 100),
	}

	first := g.Rows(tokens, testBounds)
	second := g.Rows(tokens, testBounds)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Rows() not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGrouper_EmptyBoundaries(t *testing.T) {
	g := NewGrouper()

	tokens := []model.Token{makeToken("Jane", 90, 110, 100)}
	if rows := g.Rows(tokens, nil); rows != nil {
		t.Errorf("Expected nil rows without boundaries, got %v", rows)
	}
}

// Benchmark

func BenchmarkGrouper(b *testing.B) {
	g := NewGrouper()

	tokens := make([]model.Token, 0, 300)
	for i := 0; i < 300; i++ {
		x := float64(60 + (i%5)*100)
		tokens = append(tokens, makeToken("cell", x, x+40, float64(100+i/5*12)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Rows(tokens, testBounds)
	}
}
