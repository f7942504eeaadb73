package snake

import "github.com/vovakirdan/autosnake/internal/core"

// Advance applies one tick in direction d and returns the new status.
//
// The collision test runs against the body as it was before the move, tail
// end included. A losing move changes nothing but the status. A move onto
// food grows the snake by skipping the tail pop and respawns exactly one
// food item.
func (s *State) Advance(d core.Direction) Status {
	if s.status.Ended() {
		return s.status
	}

	next := s.grid.Add(s.head, d)
	if s.body.Contains(next) {
		s.status = StatusLost
		return s.status
	}

	_, ate := s.food[next]
	if ate {
		delete(s.food, next)
	}

	s.body.PushFront(s.head)
	s.head = next
	s.facing = d
	s.ticks++

	if !ate {
		s.body.PopBack()
		return s.status
	}

	s.eaten++
	if !s.spawnFood() {
		s.status = StatusFilled
	}
	return s.status
}
