package snake

import (
	"fmt"

	"github.com/vovakirdan/autosnake/internal/core"
)

// Unreachable is the distance of obstacle cells and of cells no food can
// be reached from. It is small enough that Unreachable+1 cannot overflow.
const Unreachable = 1 << 30

// Strategy selects how the distance field is computed. Both strategies
// produce the same field.
type Strategy string

const (
	// SolverRelax sweeps the board relaxing every free cell against its
	// neighbours until a sweep changes nothing.
	SolverRelax Strategy = "relax"
	// SolverBFS runs a multi-source breadth-first search from the food.
	SolverBFS Strategy = "bfs"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case SolverRelax, SolverBFS:
		return s, nil
	case "":
		return SolverRelax, nil
	default:
		return "", fmt.Errorf("snake: unknown solver %q", name)
	}
}

// Board is the read-only view of a game the solver works from.
type Board interface {
	Grid() core.Grid
	Blocked(p core.Pos) bool
	FoodCells() []core.Pos
}

// Field maps every cell to its hop count to the nearest food, moving
// through the four wrap-around neighbours and never through an obstacle.
// Buffers are reused between solves, so a Field belongs to one game.
type Field struct {
	grid    core.Grid
	adj     [][4]int
	dist    []int
	blocked []bool
	queue   []int
	sweeps  int
}

// NewField allocates a field for grid.
func NewField(grid core.Grid) *Field {
	n := grid.Size()
	f := &Field{
		grid:    grid,
		adj:     make([][4]int, n),
		dist:    make([]int, n),
		blocked: make([]bool, n),
		queue:   make([]int, 0, n),
	}
	for i := range n {
		for k, p := range grid.Neighbors(grid.At(i)) {
			f.adj[i][k] = grid.Index(p)
		}
	}
	return f
}

// Solve recomputes the field for b with the given strategy.
func (f *Field) Solve(b Board, strategy Strategy) {
	f.load(b)
	if strategy == SolverBFS {
		f.bfs()
		return
	}
	f.relax(false)
}

// load resets every cell to Unreachable and seeds food cells with 0.
// Food on an obstacle stays Unreachable.
func (f *Field) load(b Board) {
	for i := range f.dist {
		f.dist[i] = Unreachable
		f.blocked[i] = b.Blocked(f.grid.At(i))
	}
	f.queue = f.queue[:0]
	for _, p := range b.FoodCells() {
		i := f.grid.Index(f.grid.Wrap(p))
		if f.blocked[i] || f.dist[i] == 0 {
			continue
		}
		f.dist[i] = 0
		f.queue = append(f.queue, i)
	}
	f.sweeps = 0
}

// relax sweeps the free cells, in index order or reversed, reading the
// in-progress field, until a sweep makes no change.
func (f *Field) relax(reverse bool) {
	n := len(f.dist)
	for {
		f.sweeps++
		changed := false
		for k := range n {
			i := k
			if reverse {
				i = n - 1 - k
			}
			if f.blocked[i] {
				continue
			}
			best := Unreachable
			for _, j := range f.adj[i] {
				best = min(best, f.dist[j])
			}
			if best+1 < f.dist[i] {
				f.dist[i] = best + 1
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// bfs expands from every food cell at once; sweeps counts BFS layers.
func (f *Field) bfs() {
	for head := 0; head < len(f.queue); head++ {
		i := f.queue[head]
		f.sweeps = max(f.sweeps, f.dist[i]+1)
		for _, j := range f.adj[i] {
			if f.blocked[j] || f.dist[j] != Unreachable {
				continue
			}
			f.dist[j] = f.dist[i] + 1
			f.queue = append(f.queue, j)
		}
	}
}

// Distance returns the hop count from p to the nearest food.
func (f *Field) Distance(p core.Pos) int {
	return f.dist[f.grid.Index(f.grid.Wrap(p))]
}

// Blocked reports whether p was an obstacle in the last solve.
func (f *Field) Blocked(p core.Pos) bool {
	return f.blocked[f.grid.Index(f.grid.Wrap(p))]
}

// Sweeps returns the relaxation sweeps (or BFS layers) the last solve
// needed.
func (f *Field) Sweeps() int {
	return f.sweeps
}

// Values returns a copy of the distances in row-major order.
func (f *Field) Values() []int {
	out := make([]int, len(f.dist))
	copy(out, f.dist)
	return out
}
