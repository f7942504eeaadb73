package snake

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/autosnake/internal/core"
)

func TestBodyPushPopOrder(t *testing.T) {
	b := NewBody(0)
	for c := range 3 {
		b.PushFront(core.Pos{Row: 0, Col: c})
	}

	assert.Equal(t, []core.Pos{{Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}, slices.Collect(b.All()))

	front, ok := b.Front()
	require.True(t, ok)
	assert.Equal(t, core.Pos{Row: 0, Col: 2}, front)

	back, ok := b.PopBack()
	require.True(t, ok)
	assert.Equal(t, core.Pos{Row: 0, Col: 0}, back)
	assert.False(t, b.Contains(back), "popped segment must leave the set")
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.SetLen())
}

func TestBodyGrowsPastCapacity(t *testing.T) {
	b := NewBody(4)
	var want []core.Pos
	for i := range 50 {
		p := core.Pos{Row: i / 7, Col: i % 7}
		b.PushFront(p)
		want = slices.Insert(want, 0, p)
		// Keep the ring wrapping by dropping the tail now and then.
		if i%3 == 2 {
			_, ok := b.PopBack()
			require.True(t, ok)
			want = want[:len(want)-1]
		}
	}

	assert.Equal(t, want, slices.Collect(b.All()))
	assert.Equal(t, len(want), b.SetLen())
	back, _ := b.Back()
	assert.Equal(t, want[len(want)-1], back)
}

func TestEmptyBody(t *testing.T) {
	b := NewBody(2)
	_, ok := b.PopBack()
	assert.False(t, ok)
	_, ok = b.Front()
	assert.False(t, ok)
	_, ok = b.Back()
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(b.All()))
}
