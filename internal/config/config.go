// Package config provides YAML-based configuration loading and validation
// for the snake board.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/autosnake/internal/core"
)

// SnakeConfig is the full game configuration.
type SnakeConfig struct {
	Board  BoardConfig `yaml:"board"`
	Solver string      `yaml:"solver"`
	Tick   TickConfig  `yaml:"tick"`
}

// BoardConfig holds the board parameters, read once at startup.
type BoardConfig struct {
	Height    int `yaml:"height"`     // rows, at least 2
	Width     int `yaml:"width"`      // columns, at least 2
	FoodCount int `yaml:"food_count"` // simultaneous food items, at least 1
}

// TickConfig holds the scheduler cadence.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

var (
	ErrBoardTooSmall = errors.New("board must be at least 2x2")
	ErrNoFood        = errors.New("food_count must be at least 1")
	ErrNoRoom        = errors.New("board cannot hold the snake and all food")
	ErrUnknownSolver = errors.New("unknown solver")
	ErrTickRate      = errors.New("tick interval must be positive")
)

// Validate rejects configurations no game can start from.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.Height < 2 || b.Width < 2 {
		return fmt.Errorf("config: %w (got %dx%d)", ErrBoardTooSmall, b.Height, b.Width)
	}
	if b.FoodCount < 1 {
		return fmt.Errorf("config: %w (got %d)", ErrNoFood, b.FoodCount)
	}
	// head + one body segment + every food item on distinct cells
	if b.Height*b.Width < 2+b.FoodCount {
		return fmt.Errorf("config: %w (%d cells, %d food)", ErrNoRoom, b.Height*b.Width, b.FoodCount)
	}
	switch c.Solver {
	case "relax", "bfs":
	default:
		return fmt.Errorf("config: %w %q (want relax or bfs)", ErrUnknownSolver, c.Solver)
	}
	if c.Tick.IntervalMS <= 0 {
		return fmt.Errorf("config: %w (got %dms)", ErrTickRate, c.Tick.IntervalMS)
	}
	return nil
}

// Interval returns the tick period.
func (c SnakeConfig) Interval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// TickRate returns ticks per second, at least 1.
func (c SnakeConfig) TickRate() int {
	if c.Tick.IntervalMS <= 0 {
		return 1
	}
	return max(1, 1000/c.Tick.IntervalMS)
}

// Runtime builds the config handed to Game.Reset. Screen size comes from
// the terminal; seed 0 is left for the platform to replace.
func (c SnakeConfig) Runtime(seed int64, screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   screenW,
		ScreenH:   screenH,
		TickRate:  c.TickRate(),
		Seed:      seed,
		BoardH:    c.Board.Height,
		BoardW:    c.Board.Width,
		FoodCount: c.Board.FoodCount,
		Solver:    c.Solver,
	}
}
