// Package maze holds the grid the actor walks through: an immutable wall
// layout plus the dots and power pellets still waiting to be eaten.
package maze

import (
	"errors"
	"fmt"
)

// Cell is the tag of a single grid cell.
type Cell uint8

const (
	Wall Cell = iota
	Dot
	PowerPellet
	Empty
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Dot:
		return "dot"
	case PowerPellet:
		return "power_pellet"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Consumable reports whether the cell holds something worth points.
func (c Cell) Consumable() bool {
	return c == Dot || c == PowerPellet
}

// Position addresses a grid cell. Rows grow downward.
type Position struct {
	Row, Col int
}

// Scoring defines how many points each consumable is worth.
type Scoring struct {
	Dot         int
	PowerPellet int
}

// DefaultScoring returns the classic point values.
func DefaultScoring() Scoring {
	return Scoring{Dot: 10, PowerPellet: 50}
}

// Collection is the result of Consume.
type Collection struct {
	Collected bool
	Item      Cell // What was eaten; Empty when nothing was
	Points    int
}

// Layout decoding errors.
var (
	ErrEmptyLayout  = errors.New("maze: empty layout")
	ErrRaggedLayout = errors.New("maze: rows have different lengths")
	ErrUnknownCell  = errors.New("maze: unknown layout character")
)

// Maze is the mutable cell grid decoded from a layout.
type Maze struct {
	width     int
	height    int
	cells     [][]Cell
	collected map[Position]struct{}
	remaining int
	scoring   Scoring

	spawn    Position
	hasSpawn bool
}

// New decodes a layout into a maze.
// Every row must have the same length.
func New(layout []string, scoring Scoring) (*Maze, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	m := &Maze{
		width:     len(layout[0]),
		height:    len(layout),
		cells:     make([][]Cell, len(layout)),
		collected: make(map[Position]struct{}),
		scoring:   scoring,
	}

	for row, line := range layout {
		if len(line) != m.width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedLayout, row, len(line), m.width)
		}
		m.cells[row] = make([]Cell, m.width)
		for col := 0; col < len(line); col++ {
			cell, err := decode(line[col])
			if err != nil {
				return nil, fmt.Errorf("%w %q at row %d col %d", err, line[col], row, col)
			}
			if line[col] == CharSpawn && !m.hasSpawn {
				m.spawn = Position{Row: row, Col: col}
				m.hasSpawn = true
			}
			if cell.Consumable() {
				m.remaining++
			}
			m.cells[row][col] = cell
		}
	}

	return m, nil
}

// Classic returns the reference maze.
func Classic(scoring Scoring) *Maze {
	m, err := New(ClassicLayout, scoring)
	if err != nil {
		panic(fmt.Sprintf("maze: classic layout is corrupt: %v", err))
	}
	return m
}

func decode(ch byte) (Cell, error) {
	switch ch {
	case CharWall, CharGate:
		return Wall, nil
	case CharDot:
		return Dot, nil
	case CharPowerPellet:
		return PowerPellet, nil
	case CharEmpty, CharSpawn:
		return Empty, nil
	default:
		return Empty, ErrUnknownCell
	}
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Spawn returns the position of the layout's actor marker, if it had one.
func (m *Maze) Spawn() (Position, bool) {
	return m.spawn, m.hasSpawn
}

// InRows reports whether the row lies inside the maze.
func (m *Maze) InRows(row int) bool {
	return row >= 0 && row < m.height
}

// WrapCol folds a column into [0, width).
func (m *Maze) WrapCol(col int) int {
	col %= m.width
	if col < 0 {
		col += m.width
	}
	return col
}

// CellAt returns the tag at pos. Columns wrap; a row outside the maze
// is a caller bug and panics.
func (m *Maze) CellAt(pos Position) Cell {
	if !m.InRows(pos.Row) {
		panic(fmt.Sprintf("maze: row %d outside [0, %d)", pos.Row, m.height))
	}
	return m.cells[pos.Row][m.WrapCol(pos.Col)]
}

// IsWall reports whether pos is a wall.
func (m *Maze) IsWall(pos Position) bool {
	return m.CellAt(pos) == Wall
}

// Consume eats the dot or power pellet at pos. Repeated calls for the
// same cell collect nothing.
func (m *Maze) Consume(pos Position) Collection {
	pos.Col = m.WrapCol(pos.Col)
	cell := m.CellAt(pos)
	if !cell.Consumable() {
		return Collection{Item: Empty}
	}
	if _, done := m.collected[pos]; done {
		return Collection{Item: Empty}
	}

	m.collected[pos] = struct{}{}
	m.cells[pos.Row][pos.Col] = Empty
	m.remaining--

	points := m.scoring.Dot
	if cell == PowerPellet {
		points = m.scoring.PowerPellet
	}
	return Collection{Collected: true, Item: cell, Points: points}
}

// Collected reports whether the item at pos has already been eaten.
func (m *Maze) Collected(pos Position) bool {
	pos.Col = m.WrapCol(pos.Col)
	_, ok := m.collected[pos]
	return ok
}

// Remaining returns the number of dots and power pellets left.
func (m *Maze) Remaining() int {
	return m.remaining
}

// Cells returns a copy of the grid as it is right now.
func (m *Maze) Cells() [][]Cell {
	out := make([][]Cell, m.height)
	for row := range m.cells {
		out[row] = make([]Cell, m.width)
		copy(out[row], m.cells[row])
	}
	return out
}
