package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// Direction is one of the four ways the actor can face.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

// ErrUnknownDirection is returned by ParseDirection.
var ErrUnknownDirection = errors.New("engine: unknown direction")

// Directions lists every direction in declaration order.
var Directions = []Direction{Right, Left, Up, Down}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the row and column step for the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	default:
		return 0, 0
	}
}

// ParseDirection accepts full names and their first letter, any case.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name != "" {
		for _, d := range Directions {
			if full := d.String(); name == full || name == full[:1] {
				return d, nil
			}
		}
	}
	return Right, fmt.Errorf("%w %q", ErrUnknownDirection, s)
}

// DirectionFromDelta resolves a swipe vector to a direction. The axis
// with the larger magnitude wins; ties go to the vertical axis. Screen
// coordinates are assumed, so positive dy points down. A zero vector
// carries no intent.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	if dx == 0 && dy == 0 {
		return Right, false
	}
	if core.Abs(dx) > core.Abs(dy) {
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}
	if dy > 0 {
		return Down, true
	}
	return Up, true
}

// DirectionForAction maps a platform action to a direction.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionRight:
		return Right, true
	case core.ActionLeft:
		return Left, true
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	default:
		return Right, false
	}
}

// ActionForDirection is the inverse of DirectionForAction.
func ActionForDirection(d Direction) core.Action {
	switch d {
	case Left:
		return core.ActionLeft
	case Up:
		return core.ActionUp
	case Down:
		return core.ActionDown
	default:
		return core.ActionRight
	}
}
