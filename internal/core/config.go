package core

// RuntimeConfig is handed to games at Reset. Board fields are validated by
// the config package before they get here.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one

	BoardH    int    // Board rows
	BoardW    int    // Board columns
	FoodCount int    // Simultaneous food items
	Solver    string // Distance field strategy name
}

// DefaultConfig is a 30x80 board with 10 food at 20 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   162,
		ScreenH:   33,
		TickRate:  20,
		BoardH:    30,
		BoardW:    80,
		FoodCount: 10,
		Solver:    "relax",
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
