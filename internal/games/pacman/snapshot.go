package pacman

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pacmaze/internal/games/pacman/engine"
	"github.com/vovakirdan/pacmaze/internal/games/pacman/maze"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StatePaused  GameStateType = "paused"
	StateCleared GameStateType = "cleared"
)

// Snapshot captures the game state for determinism testing and traces.
type Snapshot struct {
	Tick      uint64
	Position  maze.Position
	Current   engine.Direction
	Requested engine.Direction
	Moving    bool
	Score     int
	Remaining int
	Interval  time.Duration
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.engine.Snapshot()

	state := StatePlaying
	switch {
	case s.Remaining == 0:
		state = StateCleared
	case !g.sched.Running():
		state = StatePaused
	}

	return Snapshot{
		Tick:      s.Tick,
		Position:  s.Position,
		Current:   s.Current,
		Requested: s.Requested,
		Moving:    s.Moving,
		Score:     s.Score,
		Remaining: s.Remaining,
		Interval:  s.Interval,
		State:     state,
	}
}

// String formats the snapshot as one trace line.
func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d pos=(%d,%d) dir=%s req=%s moving=%t score=%d left=%d interval=%s state=%s",
		s.Tick, s.Position.Row, s.Position.Col, s.Current, s.Requested,
		s.Moving, s.Score, s.Remaining, s.Interval, s.State)
}
