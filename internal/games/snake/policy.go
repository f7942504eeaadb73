package snake

import "github.com/vovakirdan/autosnake/internal/core"

// Policy picks the direction of the next move.
type Policy interface {
	Name() string
	Choose(s *State) core.Direction
}

// Decision records why a direction was chosen.
type Decision struct {
	Dir      core.Direction
	Distance int  // field value of the chosen neighbour
	Fallback bool // no neighbour had a finite distance
}

// Descend picks the head neighbour with the strictly smallest distance,
// scanning core.SearchOrder so the first minimum wins. Reversal is allowed.
// When every neighbour is Unreachable it falls back to the first
// non-obstacle neighbour that does not reverse facing, and keeps facing
// when there is none.
func Descend(f *Field, head core.Pos, facing core.Direction) Decision {
	grid := f.grid
	best := Decision{Dir: facing, Distance: Unreachable, Fallback: true}
	for _, d := range core.SearchOrder {
		if v := f.Distance(grid.Add(head, d)); v < best.Distance {
			best = Decision{Dir: d, Distance: v}
		}
	}
	if !best.Fallback {
		return best
	}

	for _, d := range core.SearchOrder {
		if d == facing.Opposite() {
			continue
		}
		if !f.Blocked(grid.Add(head, d)) {
			best.Dir = d
			return best
		}
	}
	return best
}

// Autopilot follows the distance field downhill toward the nearest food.
// The field is rebuilt from scratch on every call.
type Autopilot struct {
	field    *Field
	strategy Strategy
	last     Decision
}

// NewAutopilot creates an autopilot for boards shaped like grid.
func NewAutopilot(grid core.Grid, strategy Strategy) *Autopilot {
	return &Autopilot{field: NewField(grid), strategy: strategy}
}

func (a *Autopilot) Name() string {
	return "autopilot"
}

// Choose solves the field for s and descends it from the head.
func (a *Autopilot) Choose(s *State) core.Direction {
	a.field.Solve(s, a.strategy)
	a.last = Descend(a.field, s.Head(), s.Facing())
	return a.last.Dir
}

// Last returns the most recent decision.
func (a *Autopilot) Last() Decision {
	return a.last
}

// Field exposes the field of the most recent decision.
func (a *Autopilot) Field() *Field {
	return a.field
}

// Human steers from key presses. A key opposite to the current facing is
// ignored.
type Human struct {
	pending core.Direction
	pressed bool
}

func (h *Human) Name() string {
	return "human"
}

// Press queues a key for the next Choose. Only the first key between two
// ticks counts.
func (h *Human) Press(d core.Direction) {
	if h.pressed {
		return
	}
	h.pending = d
	h.pressed = true
}

// Choose consumes the queued key.
func (h *Human) Choose(s *State) core.Direction {
	d, ok := h.pending, h.pressed
	h.pressed = false
	return Steer(s.Facing(), d, ok)
}

// Steer applies the no-reversal rule to an optional key press.
func Steer(facing, key core.Direction, pressed bool) core.Direction {
	if !pressed || key == facing.Opposite() {
		return facing
	}
	return key
}

var (
	_ Policy = (*Autopilot)(nil)
	_ Policy = (*Human)(nil)
)
