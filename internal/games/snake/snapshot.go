package snake

import "github.com/vovakirdan/autosnake/internal/core"

// Snapshot captures the observable game state for determinism tests and
// simulation reports.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Score     int
	Length    int
	Head      core.Pos
	Facing    core.Direction
	Food      []core.Pos // sorted by (row, col)
	Status    Status
	Autopilot bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Mode: g.mode}
	}
	return Snapshot{
		Tick:      g.state.Ticks(),
		Mode:      g.mode,
		Score:     g.state.Eaten(),
		Length:    g.state.Len(),
		Head:      g.state.Head(),
		Facing:    g.state.Facing(),
		Food:      g.state.FoodCells(),
		Status:    g.state.Status(),
		Autopilot: g.autopilot,
	}
}
