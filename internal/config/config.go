// Package config provides YAML-based configuration for the sea battle
// engine and its command-line front ends.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/engine"
)

// Config is the top-level configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Strategy  string          `yaml:"strategy" env:"SEABATTLE_STRATEGY"`
	Placement PlacementConfig `yaml:"placement"`
	Log       LogConfig       `yaml:"log"`
}

// BoardConfig holds the parameters a master player starts with.
type BoardConfig struct {
	Width  uint64      `yaml:"width" env:"SEABATTLE_WIDTH"`
	Height uint64      `yaml:"height" env:"SEABATTLE_HEIGHT"`
	Ships  ShipsConfig `yaml:"ships"`
}

// ShipsConfig holds the quota per ship size.
type ShipsConfig struct {
	One   uint64 `yaml:"one" env:"SEABATTLE_SHIPS_ONE"`
	Two   uint64 `yaml:"two" env:"SEABATTLE_SHIPS_TWO"`
	Three uint64 `yaml:"three" env:"SEABATTLE_SHIPS_THREE"`
	Four  uint64 `yaml:"four" env:"SEABATTLE_SHIPS_FOUR"`
}

// PlacementConfig tunes automatic fleet placement.
type PlacementConfig struct {
	MaxSweeps int `yaml:"max_sweeps" env:"SEABATTLE_MAX_SWEEPS"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level" env:"SEABATTLE_LOG_LEVEL"`
	// File receives the protocol server's logs. When empty the server
	// only logs errors, since stderr carries its error replies.
	File string `yaml:"file" env:"SEABATTLE_LOG_FILE"`
}

// Validate checks the values the engine cannot cope with.
func (c Config) Validate() error {
	if c.Board.Width == 0 || c.Board.Height == 0 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if _, ok := engine.ParseStrategyKind(c.Strategy); !ok {
		return fmt.Errorf("config: unknown strategy %q", c.Strategy)
	}
	if c.Placement.MaxSweeps < 0 {
		return fmt.Errorf("config: max_sweeps must not be negative, got %d", c.Placement.MaxSweeps)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// EngineOptions converts the configuration into engine options.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Counts: [engine.ShipKinds]uint64{
			c.Board.Ships.One,
			c.Board.Ships.Two,
			c.Board.Ships.Three,
			c.Board.Ships.Four,
		},
		Strategy:  engine.StrategyKind(c.Strategy),
		MaxSweeps: c.Placement.MaxSweeps,
	}
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
