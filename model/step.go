package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gridlife/go-life/rules"
	"github.com/gridlife/go-life/utils"
)

// Change records a single cell whose state differs between two
// consecutive generations.
type Change struct {
	Row   int
	Col   int
	Alive bool
}

// NextGeneration computes the next generation and the list of cells that
// changed, in row-major order. The receiver is read, never mutated: all
// neighbor counts see generation t, all writes land in the returned
// buffer. The change list contains every cell whose state differs and
// nothing else.
func (g *Grid) NextGeneration(config utils.Config, pool *GridPool) (*Grid, []Change) {
	if config.UseParallel {
		return g.NextGenerationParallel(pool)
	}
	return g.NextGenerationSequential(pool)
}

// NextGenerationSequential scans the grid row-major in a single
// goroutine.
func (g *Grid) NextGenerationSequential(pool *GridPool) (*Grid, []Change) {
	next := g.nextBuffer(pool)

	var changes []Change
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			alive := rules.ApplyConwayRules(g.CountLiveNeighbors(row, col), g.cells[row][col])
			if alive {
				next.cells[row][col] = true
			}
			if alive != g.cells[row][col] {
				changes = append(changes, Change{Row: row, Col: col, Alive: alive})
			}
		}
	}

	return next, changes
}

// NextGenerationParallel splits the scan across row bands. Each band
// collects its own changes; concatenating bands in index order keeps the
// final list identical to the sequential row-major one.
func (g *Grid) NextGenerationParallel(pool *GridPool) (*Grid, []Change) {
	next := g.nextBuffer(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
		bands         = make([][]Change, numWorkers)
	)

	for i := 0; i < numWorkers; i++ {
		i := i
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			var local []Change
			for row := startRow; row < endRow; row++ {
				for col := 0; col < g.cols; col++ {
					alive := rules.ApplyConwayRules(g.CountLiveNeighbors(row, col), g.cells[row][col])
					if alive {
						next.cells[row][col] = true
					}
					if alive != g.cells[row][col] {
						local = append(local, Change{Row: row, Col: col, Alive: alive})
					}
				}
			}
			bands[i] = local
			return nil
		})
	}

	// Workers only ever return nil
	_ = eg.Wait()

	var changes []Change
	for _, band := range bands {
		changes = append(changes, band...)
	}

	return next, changes
}

// ApplyChanges replays a change list onto the grid. Replaying a step's
// changes onto a copy of the prior generation reproduces the next one.
func (g *Grid) ApplyChanges(changes []Change) {
	for _, ch := range changes {
		if ch.Row >= 0 && ch.Row < g.rows && ch.Col >= 0 && ch.Col < g.cols {
			g.cells[ch.Row][ch.Col] = ch.Alive
		}
	}
}

// nextBuffer supplies an all-dead grid of matching dimensions, reusing a
// pooled buffer when one is available.
func (g *Grid) nextBuffer(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.rows, g.cols)
	}
	return newGrid(g.rows, g.cols)
}
