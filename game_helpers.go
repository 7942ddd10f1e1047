package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/gridlife/go-life/model"
	"github.com/gridlife/go-life/utils"
)

// Screen lines reserved above the grid for status output.
const statusLines = 2

// initializeGame sets up the initial simulation state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}

	if err = seedGrid(grid, config); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}

	renderer := model.NewTerminalRenderer(nil, statusLines)
	stats := utils.NewStats()

	return grid, pool, renderer, stats, nil
}

// seedGrid applies the configured patterns, or falls back to a random
// fill at the configured density.
func seedGrid(grid *model.Grid, config utils.Config) error {
	if len(config.Patterns) > 0 {
		for _, p := range config.Patterns {
			if err := grid.StampPattern(p.Name, p.Row, p.Col); err != nil {
				return err
			}
		}
		return nil
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid.Randomize(rand.New(rand.NewSource(seed)), config.Density)
	return nil
}

// displayGameStatus rewrites the status lines above the grid
func displayGameStatus(
	renderer *model.TerminalRenderer,
	generation, livingCells, changedCells int,
	grid *model.Grid,
	stats *utils.Stats,
) {
	density := float64(livingCells) / float64(grid.Rows()*grid.Cols()) * 100

	status := "Active"
	if livingCells == 0 {
		status = "Extinct"
	}

	renderer.Status(0, "Gen: %d | Living: %d | Density: %.1f%% | Changed: %d | Status: %s",
		generation, livingCells, density, changedCells, status)
	renderer.Status(1, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
}

// displayFinalStats prints the run summary after the loop stops
func displayFinalStats(renderer *model.TerminalRenderer, grid *model.Grid, stats *utils.Stats, generation int) {
	renderer.MoveBelow(grid)
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
