// Package mazegen produces random maze layouts in the layout alphabet
// understood by the maze package.
package mazegen

import (
	"errors"
	"fmt"
	"slices"

	vmaze "github.com/vinser/maze"

	"github.com/vovakirdan/pacmaze/internal/games/pacman/maze"
)

// ErrTooSmall is returned when the requested grid cannot hold a den.
var ErrTooSmall = errors.New("mazegen: maze too small")

// Options controls generation.
type Options struct {
	Width     int
	Height    int
	DenWidth  int
	DenHeight int
	Bias      float64 // Corridor straightness, 0..1
	Pellets   int     // Power pellets, one per quadrant at most
	Seed      int64
}

// DefaultOptions returns a compact maze that fits an 80x24 terminal with
// double-width cells.
func DefaultOptions() Options {
	return Options{
		Width:     21,
		Height:    15,
		DenWidth:  5,
		DenHeight: 3,
		Bias:      0.2,
		Pellets:   4,
	}
}

// Generate builds a layout. The same options always yield the same rows.
func Generate(opts Options) ([]string, error) {
	if opts.Width < opts.DenWidth+4 || opts.Height < opts.DenHeight+4 {
		return nil, fmt.Errorf("%w: %dx%d with a %dx%d den", ErrTooSmall, opts.Width, opts.Height, opts.DenWidth, opts.DenHeight)
	}

	m, err := vmaze.New(opts.Width, opts.Height, opts.DenWidth, opts.DenHeight)
	if err != nil {
		return nil, fmt.Errorf("mazegen: %w", err)
	}
	m.Generate(opts.Seed, nil, nil, nil, "top", opts.Bias)

	grid := make([][]byte, m.Height())
	for y := range grid {
		grid[y] = make([]byte, m.Width())
		for x := range grid[y] {
			grid[y][x] = glyphAt(m, x, y)
		}
	}

	ensureSpawn(grid)
	placePellets(grid, opts.Pellets)

	rows := make([]string, len(grid))
	for y, r := range grid {
		rows[y] = string(r)
	}
	return rows, nil
}

func glyphAt(m *vmaze.Maze, x, y int) byte {
	cell, ok := m.Cell(x, y)
	if !ok {
		return maze.CharWall
	}
	switch cell {
	case vmaze.Start:
		return maze.CharSpawn
	case vmaze.Path, vmaze.End:
		if m.IsInsideDen(vmaze.Point{X: x, Y: y}) {
			return maze.CharEmpty
		}
		return maze.CharDot
	default:
		return maze.CharWall
	}
}

// ensureSpawn marks a spawn when the generator left none: the dot
// nearest the bottom centre, the way the classic maze starts below the
// ghost house.
func ensureSpawn(grid [][]byte) {
	for _, row := range grid {
		if slices.Contains(row, maze.CharSpawn) {
			return
		}
	}

	ty, tx := len(grid)*3/4, len(grid[0])/2
	by, bx, best := -1, -1, -1
	for y, row := range grid {
		for x, ch := range row {
			if ch != maze.CharDot {
				continue
			}
			d := (y-ty)*(y-ty) + (x-tx)*(x-tx)
			if best < 0 || d < best {
				by, bx, best = y, x, d
			}
		}
	}
	if best >= 0 {
		grid[by][bx] = maze.CharSpawn
	}
}

// placePellets swaps the dot farthest from the centre in each quadrant
// for a power pellet.
func placePellets(grid [][]byte, n int) {
	if len(grid) == 0 || n <= 0 {
		return
	}
	cy, cx := len(grid)/2, len(grid[0])/2

	type pick struct {
		y, x, dist int
	}
	best := make([]pick, 4)
	for i := range best {
		best[i].dist = -1
	}

	for y, row := range grid {
		for x, ch := range row {
			if ch != maze.CharDot {
				continue
			}
			q := 0
			if y >= cy {
				q += 2
			}
			if x >= cx {
				q++
			}
			d := (y-cy)*(y-cy) + (x-cx)*(x-cx)
			if d > best[q].dist {
				best[q] = pick{y: y, x: x, dist: d}
			}
		}
	}

	for _, p := range best[:min(n, len(best))] {
		if p.dist >= 0 {
			grid[p.y][p.x] = maze.CharPowerPellet
		}
	}
}
