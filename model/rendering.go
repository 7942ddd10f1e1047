package model

import (
	"fmt"
	"io"
	"os"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	escClearScreen = "\x1b[2J"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
	escClearLine   = "\x1b[2K"
)

// Pos identifies a single grid cell.
type Pos struct {
	Row int
	Col int
}

// TerminalRenderer draws the grid with ANSI cursor addressing, touching
// only the cells named in each generation's change list. The visuals map
// tracks which positions currently have a glyph on screen; it is a
// derived, rebuildable projection of grid state, never the authoritative
// copy.
type TerminalRenderer struct {
	out        io.Writer
	visuals    map[Pos]struct{}
	headerRows int
}

// NewTerminalRenderer creates a renderer writing to out (stdout when
// nil). headerRows reserves screen lines above the grid for status
// output.
func NewTerminalRenderer(out io.Writer, headerRows int) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{
		out:        out,
		visuals:    make(map[Pos]struct{}),
		headerRows: headerRows,
	}
}

// Init clears the screen, draws every live cell, and seeds the visual
// cache. Calling it again rebuilds the projection from scratch.
func (r *TerminalRenderer) Init(g *Grid) {
	fmt.Fprint(r.out, escClearScreen, escHideCursor)
	r.visuals = make(map[Pos]struct{})
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col] {
				r.draw(row, col, gridPosBlock)
				r.visuals[Pos{Row: row, Col: col}] = struct{}{}
			}
		}
	}
}

// Apply draws or erases exactly the cells in the change list. Cells
// already in the requested state are left untouched.
func (r *TerminalRenderer) Apply(changes []Change) {
	for _, ch := range changes {
		pos := Pos{Row: ch.Row, Col: ch.Col}
		_, drawn := r.visuals[pos]

		switch {
		case ch.Alive && !drawn:
			r.draw(ch.Row, ch.Col, gridPosBlock)
			r.visuals[pos] = struct{}{}
		case !ch.Alive && drawn:
			r.draw(ch.Row, ch.Col, gridPosEmpty)
			delete(r.visuals, pos)
		}
	}
}

// Status overwrites one of the reserved header lines above the grid.
func (r *TerminalRenderer) Status(line int, format string, args ...interface{}) {
	fmt.Fprintf(r.out, "\x1b[%d;1H%s", line+1, escClearLine)
	fmt.Fprintf(r.out, format, args...)
}

// MoveBelow positions the cursor on the first line after the grid, for
// final output once the loop stops.
func (r *TerminalRenderer) MoveBelow(g *Grid) {
	fmt.Fprintf(r.out, "\x1b[%d;1H", g.rows+r.headerRows+1)
}

// Close restores the cursor
func (r *TerminalRenderer) Close() {
	fmt.Fprint(r.out, escShowCursor)
}

// draw positions the cursor at a cell and writes its glyph. Each cell is
// two columns wide so the board renders roughly square.
func (r *TerminalRenderer) draw(row, col int, glyph string) {
	fmt.Fprintf(r.out, "\x1b[%d;%dH%s", row+r.headerRows+1, col*2+1, glyph)
}
