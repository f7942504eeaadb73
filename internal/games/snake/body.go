package snake

import (
	"iter"

	"github.com/vovakirdan/autosnake/internal/core"
)

// Body holds the trailing segments of the snake, front (next to the head)
// to back (the tail end). Order lives in a ring buffer and membership in a
// set; PushFront and PopBack are the only mutators and they update both.
type Body struct {
	ring  []core.Pos
	front int // index of the front segment in ring
	n     int
	set   map[core.Pos]struct{}
}

// NewBody returns an empty body with room for capacity segments before it
// has to grow.
func NewBody(capacity int) *Body {
	capacity = max(capacity, 4)
	return &Body{
		ring: make([]core.Pos, capacity),
		set:  make(map[core.Pos]struct{}, capacity),
	}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// Contains reports whether p is occupied by a segment.
func (b *Body) Contains(p core.Pos) bool {
	_, ok := b.set[p]
	return ok
}

// PushFront adds p as the segment nearest the head.
func (b *Body) PushFront(p core.Pos) {
	if b.n == len(b.ring) {
		b.grow()
	}
	b.front = (b.front - 1 + len(b.ring)) % len(b.ring)
	b.ring[b.front] = p
	b.n++
	b.set[p] = struct{}{}
}

// PopBack removes and returns the tail end.
func (b *Body) PopBack() (core.Pos, bool) {
	if b.n == 0 {
		return core.Pos{}, false
	}
	i := (b.front + b.n - 1) % len(b.ring)
	p := b.ring[i]
	b.n--
	delete(b.set, p)
	return p, true
}

// Front returns the segment next to the head.
func (b *Body) Front() (core.Pos, bool) {
	if b.n == 0 {
		return core.Pos{}, false
	}
	return b.ring[b.front], true
}

// Back returns the tail end.
func (b *Body) Back() (core.Pos, bool) {
	if b.n == 0 {
		return core.Pos{}, false
	}
	return b.ring[(b.front+b.n-1)%len(b.ring)], true
}

// All yields the segments from front to back.
func (b *Body) All() iter.Seq[core.Pos] {
	return func(yield func(core.Pos) bool) {
		for i := range b.n {
			if !yield(b.ring[(b.front+i)%len(b.ring)]) {
				return
			}
		}
	}
}

// SetLen returns the size of the membership set. It equals Len unless the
// body was built with overlapping segments, which NewState rejects.
func (b *Body) SetLen() int {
	return len(b.set)
}

func (b *Body) grow() {
	next := make([]core.Pos, len(b.ring)*2)
	for i := range b.n {
		next[i] = b.ring[(b.front+i)%len(b.ring)]
	}
	b.ring = next
	b.front = 0
}
