package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gridlife/go-life/pattern"
)

// PatternPlacement anchors a named pattern at a grid position.
type PatternPlacement struct {
	Name string `json:"name" yaml:"name"`
	Row  int    `json:"row" yaml:"row"`
	Col  int    `json:"col" yaml:"col"`
}

// Config holds the configuration for a simulation run
type Config struct {
	Rows           int                `json:"rows" yaml:"rows"`
	Cols           int                `json:"cols" yaml:"cols"`
	TickInterval   time.Duration      `json:"tick_interval" yaml:"tick_interval"`
	Density        float64            `json:"density" yaml:"density"`
	Seed           int64              `json:"seed" yaml:"seed"`
	Patterns       []PatternPlacement `json:"patterns" yaml:"patterns"`
	UseParallel    bool               `json:"use_parallel" yaml:"use_parallel"`
	UseMemoryPool  bool               `json:"use_memory_pool" yaml:"use_memory_pool"`
	MaxGenerations int                `json:"max_generations" yaml:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           30,
		Cols:           60,
		TickInterval:   100 * time.Millisecond,
		Density:        0.3,
		Seed:           0, // 0 means seed from the clock at startup
		UseParallel:    true,
		UseMemoryPool:  true,
		MaxGenerations: 0,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by
// extension, on top of the defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal json from file: %+v", filename)
		}
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the simulation cannot construct.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("[Validate] invalid grid dimensions %dx%d: rows and cols must be positive", c.Rows, c.Cols)
	}
	if c.Density < 0.0 || c.Density > 1.0 {
		return errors.Errorf("[Validate] density %v outside [0.0, 1.0]", c.Density)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("[Validate] tick interval must be positive, got %v", c.TickInterval)
	}
	for _, p := range c.Patterns {
		if _, err := pattern.Lookup(p.Name); err != nil {
			return errors.Wrapf(err, "[Validate] bad pattern placement at (%d,%d)", p.Row, p.Col)
		}
	}
	return nil
}
