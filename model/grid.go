package model

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/gridlife/go-life/pattern"
)

// Grid holds the authoritative cell states for a bounded board.
// Positions outside [0, rows) x [0, cols) do not exist: the board does
// not wrap, and off-grid positions never count as neighbors.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates a grid of the given dimensions with every cell dead.
// Non-positive dimensions are rejected, never clamped.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("[NewGrid] invalid dimensions %dx%d: rows and cols must be positive", rows, cols)
	}
	return newGrid(rows, cols), nil
}

// newGrid skips validation for internal callers whose dimensions come
// from an already-constructed grid.
func newGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[row][col] = false
		}
	}
}

// Set sets a single cell's state. Out-of-range positions are rejected,
// unlike pattern stamping, which clips.
func (g *Grid) Set(row, col int, alive bool) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return errors.Errorf("[Set] position (%d,%d) out of range for %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[row][col] = alive
	return nil
}

// Get returns the state of a cell. Out-of-range positions read as dead.
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row][col]
}

// CountLiveNeighbors counts the live cells in the Moore neighborhood of
// (row, col). Off-grid positions contribute zero and the cell itself is
// never counted, so the result is in [0, 8].
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0

	// Clamp the neighborhood to the grid once, up front
	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for nr := minRow; nr <= maxRow; nr++ {
		for nc := minCol; nc <= maxCol; nc++ {
			if nr == row && nc == col {
				continue // Skip the cell itself
			}
			if g.cells[nr][nc] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Randomize fills the grid with random living cells at the given
// density. Deterministic for a seeded source.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[row][col] = rng.Float64() < density
		}
	}
}

// Stamp applies a pattern's offsets at the anchor position, setting each
// in-bounds cell alive. Offsets landing outside the grid are dropped.
func (g *Grid) Stamp(p pattern.Pattern, startRow, startCol int) {
	for _, off := range p.Offsets {
		row, col := startRow+off.Row, startCol+off.Col
		if row >= 0 && row < g.rows && col >= 0 && col < g.cols {
			g.cells[row][col] = true
		}
	}
}

// StampPattern resolves a pattern by name and stamps it. An unknown name
// is an error.
func (g *Grid) StampPattern(name string, startRow, startCol int) error {
	p, err := pattern.Lookup(name)
	if err != nil {
		return errors.Wrapf(err, "[StampPattern] cannot stamp at (%d,%d)", startRow, startCol)
	}
	g.Stamp(p, startRow, startCol)
	return nil
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	clone := newGrid(g.rows, g.cols)
	for row := 0; row < g.rows; row++ {
		copy(clone.cells[row], g.cells[row])
	}
	return clone
}

// Equal reports whether two grids have identical dimensions and cell
// states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}
