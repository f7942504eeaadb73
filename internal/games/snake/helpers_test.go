package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/autosnake/internal/core"
)

// newTestState builds a running state with an explicit layout. body is
// listed front (next to the head) to back (tail end).
func newTestState(t *testing.T, h, w int, head core.Pos, facing core.Direction, body, food []core.Pos) *State {
	t.Helper()
	grid, err := core.NewGrid(h, w)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	s := &State{
		grid:       grid,
		rng:        rand.New(rand.NewSource(1)),
		head:       head,
		body:       NewBody(len(body)),
		food:       make(map[core.Pos]struct{}),
		foodTarget: len(food),
		facing:     facing,
	}
	for i := len(body) - 1; i >= 0; i-- {
		s.body.PushFront(body[i])
	}
	for _, p := range food {
		s.food[p] = struct{}{}
	}
	return s
}

// checkInvariants verifies the structural invariants that must hold after
// every committed tick.
func checkInvariants(t *testing.T, s *State) {
	t.Helper()
	if s.body.Len() != s.body.SetLen() {
		t.Fatalf("body has %d segments but set has %d", s.body.Len(), s.body.SetLen())
	}
	for p := range s.body.All() {
		if !s.body.Contains(p) {
			t.Fatalf("segment %v missing from body set", p)
		}
	}
	if s.status == StatusRunning {
		if s.body.Contains(s.head) {
			t.Fatalf("head %v is inside the body", s.head)
		}
		if len(s.food) != s.foodTarget {
			t.Fatalf("food count = %d, expected %d", len(s.food), s.foodTarget)
		}
	}
	for p := range s.food {
		if s.Blocked(p) {
			t.Fatalf("food %v sits on the snake", p)
		}
	}
}

// fixedBoard is a Board with an explicit obstacle set.
type fixedBoard struct {
	grid     core.Grid
	blocked  map[core.Pos]bool
	foodList []core.Pos
}

func (b fixedBoard) Grid() core.Grid { return b.grid }
func (b fixedBoard) Blocked(p core.Pos) bool { return b.blocked[p] }
func (b fixedBoard) FoodCells() []core.Pos { return b.foodList }
