package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default board: 30x80, 10 food items,
// relaxation solver, 50ms ticks.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Height:    30,
			Width:     80,
			FoodCount: 10,
		},
		Solver: "relax",
		Tick: TickConfig{
			IntervalMS: 50,
		},
	}
}
