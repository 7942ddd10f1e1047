package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gridlife/go-life/model"
	"github.com/gridlife/go-life/utils"
)

// loadConfigOrDefault tries config.json then config.yaml, falling back
// to the defaults when neither is readable.
func loadConfigOrDefault() utils.Config {
	for _, filename := range []string{"config.json", "config.yaml"} {
		if config, err := utils.LoadConfig(filename); err == nil {
			return config
		}
	}
	fmt.Println("Using default configuration (no config.json or config.yaml found)")
	return utils.DefaultConfig()
}

func main() {
	config := loadConfigOrDefault()

	grid, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to initialize: %+v\n", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	renderer.Init(grid)

	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

loop:
	for {
		select {
		case <-sigChan:
			break loop
		case <-ticker.C:
		}

		frameStart := time.Now()

		// Advance one generation and touch only the cells that changed
		next, changes := grid.NextGeneration(config, pool)
		renderer.Apply(changes)

		livingCells := next.CountLivingCells()
		stats.Update(generation, livingCells, len(changes), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		displayGameStatus(renderer, generation, livingCells, len(changes), next, stats)

		// Return old grid to pool if using memory pooling
		model.GridToPool(grid, pool)
		grid = next
		generation++

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			break loop
		}
	}

	displayFinalStats(renderer, grid, stats, generation)
	renderer.Close()
	model.GridToPool(grid, pool)
}
