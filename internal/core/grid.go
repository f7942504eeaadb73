// Package core provides the pure building blocks of the snake platform:
// wrap-around grid topology, the character screen buffer and the input
// abstraction. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

import "fmt"

// Pos is a cell on the board, addressed by row and column.
// Positions handed out by a Grid are always normalized into
// [0, height) x [0, width).
type Pos struct {
	Row, Col int
}

// Less orders positions by row, then column.
func (p Pos) Less(o Pos) bool {
	if p.Row == o.Row {
		return p.Col < o.Col
	}
	return p.Row < o.Row
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four cardinal unit moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// SearchOrder is the fixed neighbour enumeration used by the navigation
// code. The first strict minimum in this order wins ties.
var SearchOrder = [4]Direction{Up, Left, Down, Right}

// Vector returns the (row, col) delta of the direction.
func (d Direction) Vector() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Glyph is the head character drawn for a snake facing this way.
func (d Direction) Glyph() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '>'
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is a toroidal board: moving off one edge re-enters on the opposite
// edge.
type Grid struct {
	height int
	width  int
}

// NewGrid returns a grid of the given size. Both dimensions must be at
// least 2.
func NewGrid(height, width int) (Grid, error) {
	if height < 2 || width < 2 {
		return Grid{}, fmt.Errorf("core: grid %dx%d is smaller than 2x2", height, width)
	}
	return Grid{height: height, width: width}, nil
}

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Size returns the number of cells.
func (g Grid) Size() int { return g.height * g.width }

// Center returns the cell at (height/2, width/2).
func (g Grid) Center() Pos {
	return Pos{Row: g.height / 2, Col: g.width / 2}
}

// Wrap maps any integer pair onto its canonical cell. Uses floored modulo,
// so negative coordinates wrap correctly.
func (g Grid) Wrap(p Pos) Pos {
	return Pos{Row: mod(p.Row, g.height), Col: mod(p.Col, g.width)}
}

// Add moves p one step in direction d and wraps the result.
func (g Grid) Add(p Pos, d Direction) Pos {
	dr, dc := d.Vector()
	return g.Wrap(Pos{Row: p.Row + dr, Col: p.Col + dc})
}

// Neighbors returns the four wrapped neighbours of p in SearchOrder.
func (g Grid) Neighbors(p Pos) [4]Pos {
	var out [4]Pos
	for i, d := range SearchOrder {
		out[i] = g.Add(p, d)
	}
	return out
}

// Index returns the dense row-major index of a normalized position.
func (g Grid) Index(p Pos) int {
	return p.Row*g.width + p.Col
}

// At is the inverse of Index.
func (g Grid) At(i int) Pos {
	return Pos{Row: i / g.width, Col: i % g.width}
}

// Contains reports whether p is already normalized.
func (g Grid) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
