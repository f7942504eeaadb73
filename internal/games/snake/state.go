package snake

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
	"slices"

	"github.com/vovakirdan/autosnake/internal/core"
)

// Status is the state machine position of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusLost           // head ran into the body
	StatusFilled         // no free cell left to respawn food
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	case StatusFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// Ended reports whether the status is terminal.
func (s Status) Ended() bool {
	return s != StatusRunning
}

var (
	// ErrNoFood is returned when a game is asked to keep zero food items.
	ErrNoFood = errors.New("snake: food count must be at least 1")
	// ErrNoRoom is returned when the board cannot hold the snake and all
	// of its food at once.
	ErrNoRoom = errors.New("snake: board too small for snake and food")
)

// State is one game: the board, the snake and the food. A State is owned
// by a single goroutine; Advance is its only mutator once play starts.
type State struct {
	grid       core.Grid
	rng        *rand.Rand
	head       core.Pos
	body       *Body
	food       map[core.Pos]struct{}
	foodTarget int
	facing     core.Direction
	status     Status
	ticks      uint64
	eaten      int
}

// NewState sets up a fresh game: head at the board centre, one segment to
// its left, facing right, and foodCount food items placed at random.
func NewState(grid core.Grid, foodCount int, rng *rand.Rand) (*State, error) {
	if foodCount < 1 {
		return nil, ErrNoFood
	}
	// head + one body segment + every food item on distinct cells
	if grid.Size() < 2+foodCount {
		return nil, fmt.Errorf("%w: %dx%d cells, %d food", ErrNoRoom, grid.Height(), grid.Width(), foodCount)
	}

	s := &State{
		grid:       grid,
		rng:        rng,
		head:       grid.Center(),
		body:       NewBody(grid.Size()),
		food:       make(map[core.Pos]struct{}, foodCount),
		foodTarget: foodCount,
		facing:     core.Right,
	}
	s.body.PushFront(grid.Add(s.head, core.Left))

	for range foodCount {
		s.spawnFood()
	}
	return s, nil
}

// Grid returns the board topology.
func (s *State) Grid() core.Grid { return s.grid }

// Head returns the head cell.
func (s *State) Head() core.Pos { return s.head }

// Facing returns the last committed heading.
func (s *State) Facing() core.Direction { return s.facing }

// Status returns the game status.
func (s *State) Status() Status { return s.status }

// Ticks returns the number of committed moves.
func (s *State) Ticks() uint64 { return s.ticks }

// Eaten returns the number of food items consumed.
func (s *State) Eaten() int { return s.eaten }

// FoodTarget returns the configured number of simultaneous food items.
func (s *State) FoodTarget() int { return s.foodTarget }

// Len returns the snake length, head included.
func (s *State) Len() int { return 1 + s.body.Len() }

// Segments yields the body from the segment behind the head to the tail.
func (s *State) Segments() iter.Seq[core.Pos] { return s.body.All() }

// InBody reports whether p is a body segment (the head excluded).
func (s *State) InBody(p core.Pos) bool { return s.body.Contains(p) }

// Blocked reports whether p is an obstacle: the head or any body segment.
func (s *State) Blocked(p core.Pos) bool {
	return p == s.head || s.body.Contains(p)
}

// HasFood reports whether p holds food.
func (s *State) HasFood(p core.Pos) bool {
	_, ok := s.food[p]
	return ok
}

// FoodCells returns the food positions in (row, col) order.
func (s *State) FoodCells() []core.Pos {
	out := make([]core.Pos, 0, len(s.food))
	for p := range s.food {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b core.Pos) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// free reports whether food may be placed on p.
func (s *State) free(p core.Pos) bool {
	_, isFood := s.food[p]
	return !isFood && !s.Blocked(p)
}

// spawnFood places one food item on a uniformly random free cell. It draws
// random cells until one is free; after a bounded number of misses it
// picks uniformly among the remaining free cells instead. Returns false
// when the board has no free cell.
func (s *State) spawnFood() bool {
	size := s.grid.Size()
	for range 4 * size {
		p := s.grid.At(s.rng.Intn(size))
		if s.free(p) {
			s.food[p] = struct{}{}
			return true
		}
	}

	var open []core.Pos
	for i := range size {
		if p := s.grid.At(i); s.free(p) {
			open = append(open, p)
		}
	}
	if len(open) == 0 {
		return false
	}
	s.food[open[s.rng.Intn(len(open))]] = struct{}{}
	return true
}
