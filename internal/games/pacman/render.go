package pacman

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacman/engine"
	"github.com/vovakirdan/pacmaze/internal/games/pacman/maze"
)

const (
	hudHeight = 2

	// The mouth opens and closes once per period.
	mouthPeriod = 320 * time.Millisecond
)

// Palette used by Render.
const (
	wallColor   = core.ColorWall
	dotColor    = core.ColorDot
	pelletColor = core.ColorPellet
	actorColor  = core.ColorActor
	hudColor    = core.ColorText
	dimColor    = core.ColorDim
)

// Glyph returns the actor rune for a facing, movement flag and animation
// time. A stalled actor keeps its mouth open.
func Glyph(dir engine.Direction, moving bool, elapsed time.Duration) rune {
	if moving && elapsed%mouthPeriod >= mouthPeriod/2 {
		return '●'
	}
	switch dir {
	case engine.Left:
		return 'ᗤ'
	case engine.Up:
		return 'ᗢ'
	case engine.Down:
		return 'ᗣ'
	default:
		return 'ᗧ'
	}
}

// cellRunes returns what a maze cell looks like, cellW runes wide.
func cellRunes(c maze.Cell, cellW int) ([]rune, core.Color) {
	out := make([]rune, cellW)
	for i := range out {
		out[i] = ' '
	}
	switch c {
	case maze.Wall:
		for i := range out {
			out[i] = '█'
		}
		return out, wallColor
	case maze.Dot:
		out[cellW/2] = '·'
		return out, dotColor
	case maze.PowerPellet:
		out[cellW/2] = '●'
		return out, pelletColor
	}
	return out, core.ColorDefault
}

// layout picks the cell width and origin that fit the maze on dst.
// ok is false when even single-width cells do not fit.
func (g *Game) layout(dst *core.Screen) (cellW, originX, originY int, ok bool) {
	m := g.engine.Maze()
	if dst.Height() < m.Height()+hudHeight {
		return 0, 0, 0, false
	}
	switch {
	case dst.Width() >= m.Width()*2:
		cellW = 2
	case dst.Width() >= m.Width():
		cellW = 1
	default:
		return 0, 0, 0, false
	}
	originX = (dst.Width() - m.Width()*cellW) / 2
	originY = hudHeight + (dst.Height()-hudHeight-m.Height())/2
	return cellW, originX, originY, true
}

// Render draws the HUD, the maze and the actor.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	cellW, ox, oy, ok := g.layout(dst)
	if !ok {
		m := g.engine.Maze()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", m.Width(), m.Height()+hudHeight))
		return
	}

	g.renderMaze(dst, cellW, ox, oy)

	pos := g.engine.Position()
	glyph := Glyph(g.engine.Current(), g.engine.Moving(), g.elapsed)
	dst.SetColored(ox+pos.Col*cellW+cellW/2, oy+pos.Row, glyph, actorColor)

	switch state := g.State(); {
	case state.Cleared:
		g.renderOverlay(dst, "Maze cleared!", fmt.Sprintf("Score %d - R to play again", state.Score))
	case state.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderMaze(dst *core.Screen, cellW, ox, oy int) {
	cells := g.engine.Maze().Cells()
	for r, row := range cells {
		for c, cell := range row {
			runes, color := cellRunes(cell, cellW)
			for i, ch := range runes {
				dst.SetColored(ox+c*cellW+i, oy+r, ch, color)
			}
		}
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.engine.Snapshot()
	hud := fmt.Sprintf(" PAC-MAZE  Score: %d  Left: %d  Tick: %s",
		s.Score, s.Remaining, s.Interval.Round(time.Millisecond))
	dst.DrawTextColored(0, 0, hud, hudColor)

	turn := s.Current.String()
	if s.Requested != s.Current {
		turn += " → " + s.Requested.String()
	}
	// Right-aligned, but never over the score.
	x := core.Clamp(dst.Width()-len([]rune(turn))-1, len([]rune(hud))+1, dst.Width())
	dst.DrawTextColored(x, 0, turn, dimColor)

	dst.DrawHLine(0, 1, dst.Width(), '─', dimColor)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, hudColor)
	dst.DrawTextCentered(box.Y+1, line1, actorColor)
	dst.DrawTextCentered(box.Y+3, line2, hudColor)
}
