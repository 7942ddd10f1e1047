package model

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gridlife/go-life/pattern"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) unexpected error: %v", rows, cols, err)
	}
	return g
}

func mustSet(t *testing.T, g *Grid, row, col int, alive bool) {
	t.Helper()
	if err := g.Set(row, col, alive); err != nil {
		t.Fatalf("Set(%d, %d, %v) unexpected error: %v", row, col, alive, err)
	}
}

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		rows, cols int
		wantErr    bool
	}{
		{0, 5, true},
		{5, 0, true},
		{-1, 3, true},
		{3, -1, true},
		{0, 0, true},
		{1, 1, false},
		{3, 4, false},
	}

	for _, tt := range tests {
		g, err := NewGrid(tt.rows, tt.cols)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewGrid(%d, %d) = nil error, want rejection", tt.rows, tt.cols)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewGrid(%d, %d) unexpected error: %v", tt.rows, tt.cols, err)
			continue
		}
		if g.Rows() != tt.rows || g.Cols() != tt.cols {
			t.Errorf("NewGrid(%d, %d) has dimensions %dx%d", tt.rows, tt.cols, g.Rows(), g.Cols())
		}
		if g.CountLivingCells() != 0 {
			t.Errorf("NewGrid(%d, %d) not all dead", tt.rows, tt.cols)
		}
	}
}

func TestSetRejectsOutOfRange(t *testing.T) {
	g := mustGrid(t, 3, 3)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
		if err := g.Set(pos[0], pos[1], true); err == nil {
			t.Errorf("Set(%d, %d) out of range returned nil error", pos[0], pos[1])
		}
	}
	if g.CountLivingCells() != 0 {
		t.Error("rejected Set still mutated the grid")
	}

	mustSet(t, g, 1, 2, true)
	if !g.Get(1, 2) {
		t.Error("Set(1, 2, true) not visible through Get")
	}
}

func TestGetOutOfRangeReadsDead(t *testing.T) {
	g := mustGrid(t, 2, 2)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.Get(pos[0], pos[1]) {
			t.Errorf("Get(%d, %d) out of range = true", pos[0], pos[1])
		}
	}
}

func TestCountLiveNeighbors(t *testing.T) {
	// Fully live 3x3: the center sees all 8, corners see 3, edges see 5.
	g := mustGrid(t, 3, 3)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			mustSet(t, g, row, col, true)
		}
	}

	tests := []struct {
		row, col int
		want     int
	}{
		{1, 1, 8},
		{0, 0, 3},
		{2, 2, 3},
		{0, 1, 5},
		{1, 0, 5},
	}
	for _, tt := range tests {
		if got := g.CountLiveNeighbors(tt.row, tt.col); got != tt.want {
			t.Errorf("CountLiveNeighbors(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestCountLiveNeighborsExcludesSelf(t *testing.T) {
	g := mustGrid(t, 3, 3)
	mustSet(t, g, 1, 1, true)
	if got := g.CountLiveNeighbors(1, 1); got != 0 {
		t.Errorf("lone live cell counts itself: got %d", got)
	}
}

func TestCountLiveNeighborsDegenerateGrids(t *testing.T) {
	// Single row: the Moore neighborhood clips to at most 2 candidates.
	row := mustGrid(t, 1, 3)
	for col := 0; col < 3; col++ {
		mustSet(t, row, 0, col, true)
	}
	if got := row.CountLiveNeighbors(0, 1); got != 2 {
		t.Errorf("1x3 middle cell: got %d neighbors, want 2", got)
	}
	if got := row.CountLiveNeighbors(0, 0); got != 1 {
		t.Errorf("1x3 end cell: got %d neighbors, want 1", got)
	}

	// Single column.
	col := mustGrid(t, 3, 1)
	for r := 0; r < 3; r++ {
		mustSet(t, col, r, 0, true)
	}
	if got := col.CountLiveNeighbors(1, 0); got != 2 {
		t.Errorf("3x1 middle cell: got %d neighbors, want 2", got)
	}

	// 1x1: no neighbors exist at all.
	single := mustGrid(t, 1, 1)
	mustSet(t, single, 0, 0, true)
	if got := single.CountLiveNeighbors(0, 0); got != 0 {
		t.Errorf("1x1 cell: got %d neighbors, want 0", got)
	}
}

func TestRandomizeDensityExtremes(t *testing.T) {
	g := mustGrid(t, 8, 8)

	g.Randomize(rand.New(rand.NewSource(1)), 0.0)
	if got := g.CountLivingCells(); got != 0 {
		t.Errorf("Randomize(0.0) left %d cells alive", got)
	}

	g.Randomize(rand.New(rand.NewSource(1)), 1.0)
	if got := g.CountLivingCells(); got != 64 {
		t.Errorf("Randomize(1.0) produced %d live cells, want 64", got)
	}
}

func TestRandomizeDeterministicWithSeed(t *testing.T) {
	a := mustGrid(t, 10, 10)
	b := mustGrid(t, 10, 10)

	a.Randomize(rand.New(rand.NewSource(42)), 0.3)
	b.Randomize(rand.New(rand.NewSource(42)), 0.3)

	if !a.Equal(b) {
		t.Error("same seed produced different grids")
	}
}

func TestStampClipsSilently(t *testing.T) {
	glider, err := pattern.Lookup("glider")
	if err != nil {
		t.Fatalf("Lookup(glider) unexpected error: %v", err)
	}

	// Fully out of bounds: the grid is left unchanged.
	g := mustGrid(t, 3, 3)
	g.Stamp(glider, 10, 10)
	g.Stamp(glider, -10, -10)
	if got := g.CountLivingCells(); got != 0 {
		t.Errorf("fully out-of-bounds stamp set %d cells", got)
	}

	// Partial clip: only in-bounds offsets land.
	blinker, err := pattern.Lookup("blinker")
	if err != nil {
		t.Fatalf("Lookup(blinker) unexpected error: %v", err)
	}
	small := mustGrid(t, 2, 2)
	small.Stamp(blinker, 0, 1)
	if got := small.CountLivingCells(); got != 1 {
		t.Errorf("partial stamp set %d cells, want 1", got)
	}
	if !small.Get(0, 1) {
		t.Error("partial stamp missed the in-bounds offset")
	}
}

func TestStampPatternUnknownName(t *testing.T) {
	g := mustGrid(t, 5, 5)
	err := g.StampPattern("flying_saucer", 0, 0)
	if err == nil {
		t.Fatal("StampPattern with unknown name returned nil error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q does not report pattern as not found", err.Error())
	}
	if g.CountLivingCells() != 0 {
		t.Error("failed stamp mutated the grid")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 4, 4)
	mustSet(t, g, 1, 1, true)

	clone := g.Clone()
	if !clone.Equal(g) {
		t.Fatal("clone differs from original")
	}

	mustSet(t, clone, 2, 2, true)
	if g.Get(2, 2) {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestEqualDimensionMismatch(t *testing.T) {
	a := mustGrid(t, 2, 3)
	b := mustGrid(t, 3, 2)
	if a.Equal(b) {
		t.Error("grids with different dimensions reported equal")
	}
	if a.Equal(nil) {
		t.Error("grid reported equal to nil")
	}
}
