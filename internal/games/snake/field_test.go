package snake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/autosnake/internal/core"
)

func torusDistance(g core.Grid, a, b core.Pos) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return min(dr, g.Height()-dr) + min(dc, g.Width()-dc)
}

func randomBoard(rng *rand.Rand, h, w int, density float64, foods int) fixedBoard {
	grid, _ := core.NewGrid(h, w)
	b := fixedBoard{grid: grid, blocked: make(map[core.Pos]bool)}
	for i := range grid.Size() {
		if rng.Float64() < density {
			b.blocked[grid.At(i)] = true
		}
	}
	for range foods {
		b.foodList = append(b.foodList, grid.At(rng.Intn(grid.Size())))
	}
	return b
}

func TestFieldOpenBoardIsTorusDistance(t *testing.T) {
	grid, err := core.NewGrid(5, 7)
	require.NoError(t, err)
	food := core.Pos{Row: 1, Col: 2}
	b := fixedBoard{grid: grid, blocked: map[core.Pos]bool{}, foodList: []core.Pos{food}}

	for _, strategy := range []Strategy{SolverRelax, SolverBFS} {
		f := NewField(grid)
		f.Solve(b, strategy)
		for i := range grid.Size() {
			p := grid.At(i)
			assert.Equal(t, torusDistance(grid, p, food), f.Distance(p), "%s at %v", strategy, p)
		}
	}
}

func TestFieldStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	sizes := [][2]int{{2, 2}, {2, 5}, {3, 3}, {8, 8}, {10, 23}, {30, 80}}

	for _, size := range sizes {
		for range 20 {
			b := randomBoard(rng, size[0], size[1], 0.3, 1+rng.Intn(4))

			relax := NewField(b.grid)
			relax.Solve(b, SolverRelax)
			bfs := NewField(b.grid)
			bfs.Solve(b, SolverBFS)
			reversed := NewField(b.grid)
			reversed.load(b)
			reversed.relax(true)

			require.Equal(t, bfs.Values(), relax.Values(), "relax vs bfs on %dx%d", size[0], size[1])
			require.Equal(t, relax.Values(), reversed.Values(), "sweep order changed the result on %dx%d", size[0], size[1])
		}
	}
}

func TestFieldIsIdempotent(t *testing.T) {
	grid, _ := core.NewGrid(10, 10)
	s, err := NewState(grid, 5, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	f := NewField(grid)
	f.Solve(s, SolverRelax)
	first := f.Values()
	f.Solve(s, SolverRelax)

	assert.Equal(t, first, f.Values())
}

func TestFieldObstaclesStayUnreachable(t *testing.T) {
	grid, _ := core.NewGrid(6, 6)
	wall := map[core.Pos]bool{}
	for r := range 6 {
		wall[core.Pos{Row: r, Col: 3}] = true
	}
	b := fixedBoard{grid: grid, blocked: wall, foodList: []core.Pos{{Row: 0, Col: 0}}}

	f := NewField(grid)
	f.Solve(b, SolverRelax)

	for p := range wall {
		assert.Equal(t, Unreachable, f.Distance(p), "obstacle %v", p)
		assert.True(t, f.Blocked(p))
	}
	// Going left around the wrap is the only way to column 5.
	assert.Equal(t, 1, f.Distance(core.Pos{Row: 0, Col: 5}))
	assert.Equal(t, 2, f.Distance(core.Pos{Row: 0, Col: 4}))
}

func TestFieldFoodOnObstacleIsIgnored(t *testing.T) {
	grid, _ := core.NewGrid(4, 4)
	food := core.Pos{Row: 2, Col: 2}
	b := fixedBoard{grid: grid, blocked: map[core.Pos]bool{food: true}, foodList: []core.Pos{food}}

	f := NewField(grid)
	f.Solve(b, SolverBFS)
	for _, v := range f.Values() {
		assert.Equal(t, Unreachable, v)
	}
}

func TestEnclosedFoodFallsBack(t *testing.T) {
	// Food at (0,0) is sealed off by its four wrapped neighbours.
	grid, _ := core.NewGrid(4, 4)
	head := core.Pos{Row: 2, Col: 2}
	blocked := map[core.Pos]bool{
		{Row: 3, Col: 0}: true, {Row: 0, Col: 3}: true,
		{Row: 1, Col: 0}: true, {Row: 0, Col: 1}: true,
		head: true,
	}
	b := fixedBoard{grid: grid, blocked: blocked, foodList: []core.Pos{{Row: 0, Col: 0}}}

	for _, strategy := range []Strategy{SolverRelax, SolverBFS} {
		f := NewField(grid)
		f.Solve(b, strategy)

		for _, n := range grid.Neighbors(head) {
			require.Equal(t, Unreachable, f.Distance(n), "%s: neighbour %v", strategy, n)
		}
		d := Descend(f, head, core.Right)
		assert.True(t, d.Fallback)
		assert.Equal(t, core.Up, d.Dir, "first open non-reversing neighbour")
	}
}

func TestFullyBoxedHeadKeepsFacing(t *testing.T) {
	// 3x3 board: everything but the food cell is snake, and the food is
	// not next to the head.
	grid, _ := core.NewGrid(3, 3)
	blocked := map[core.Pos]bool{}
	for i := range grid.Size() {
		blocked[grid.At(i)] = true
	}
	food := core.Pos{Row: 1, Col: 1}
	delete(blocked, food)
	b := fixedBoard{grid: grid, blocked: blocked, foodList: []core.Pos{food}}

	f := NewField(grid)
	f.Solve(b, SolverRelax)

	// Every neighbour of (0,0) is snake, so there is nowhere to go.
	d := Descend(f, core.Pos{Row: 0, Col: 0}, core.Down)
	assert.True(t, d.Fallback)
	assert.Equal(t, core.Down, d.Dir)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, SolverRelax, s)

	s, err = ParseStrategy("bfs")
	require.NoError(t, err)
	assert.Equal(t, SolverBFS, s)

	_, err = ParseStrategy("astar")
	assert.Error(t, err)
}

func BenchmarkFieldRelax(b *testing.B) {
	benchmarkField(b, SolverRelax)
}

func BenchmarkFieldBFS(b *testing.B) {
	benchmarkField(b, SolverBFS)
}

func benchmarkField(b *testing.B, strategy Strategy) {
	grid, _ := core.NewGrid(30, 80)
	s, err := NewState(grid, 10, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	f := NewField(grid)
	b.ResetTimer()
	for range b.N {
		f.Solve(s, strategy)
	}
}
