// Package engine drives the actor through the maze: it buffers the
// player's requested direction, resolves it against walls once per tick,
// collects what the actor walks over and adapts the tick interval to how
// freely the actor is moving.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/pacmaze/internal/games/pacman/maze"
)

// Construction errors.
var (
	ErrSpawnBlocked = errors.New("engine: spawn is not a walkable cell")
	ErrBadTiming    = errors.New("engine: invalid tick timing")
)

// Config holds the movement tuning.
type Config struct {
	Spawn        maze.Position
	BaseInterval time.Duration // Starting tick interval; the ceiling is twice this
	MinInterval  time.Duration // Floor reached while moving freely
	SpeedUp      float64       // Interval multiplier after a move, in (0, 1]
	SlowDown     float64       // Interval multiplier after a blocked tick, >= 1
}

// DefaultConfig returns the classic tuning.
func DefaultConfig() Config {
	return Config{
		Spawn:        maze.ClassicSpawn,
		BaseInterval: 150 * time.Millisecond,
		MinInterval:  100 * time.Millisecond,
		SpeedUp:      0.95,
		SlowDown:     1.1,
	}
}

// MaxInterval returns the slowest the engine may tick.
func (c Config) MaxInterval() time.Duration {
	return 2 * c.BaseInterval
}

// Validate checks the timing invariants.
func (c Config) Validate() error {
	switch {
	case c.BaseInterval <= 0:
		return fmt.Errorf("%w: base interval %v must be positive", ErrBadTiming, c.BaseInterval)
	case c.MinInterval <= 0 || c.MinInterval > c.BaseInterval:
		return fmt.Errorf("%w: min interval %v must be in (0, %v]", ErrBadTiming, c.MinInterval, c.BaseInterval)
	case c.SpeedUp <= 0 || c.SpeedUp > 1:
		return fmt.Errorf("%w: speed-up factor %v must be in (0, 1]", ErrBadTiming, c.SpeedUp)
	case c.SlowDown < 1:
		return fmt.Errorf("%w: slow-down factor %v must be >= 1", ErrBadTiming, c.SlowDown)
	}
	return nil
}

// MoveOutcome is the result of a single move attempt.
type MoveOutcome struct {
	Moved     bool
	Position  maze.Position
	Collected maze.Collection
}

// TickResult describes what one tick did.
type TickResult struct {
	Tick      uint64
	Direction Direction // Direction tried; Current when nothing was viable
	Turned    bool      // The buffered request was adopted this tick
	Move      MoveOutcome
	Interval  time.Duration // Interval in effect after the tick
}

// Engine owns the actor state. It is not safe for concurrent use; the
// host calls it from a single loop.
type Engine struct {
	maze *maze.Maze
	cfg  Config

	pos       maze.Position
	current   Direction
	requested Direction
	interval  time.Duration
	score     int
	moving    bool
	ticks     uint64
}

// New places the actor at the configured spawn facing right.
func New(m *maze.Maze, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !m.InRows(cfg.Spawn.Row) || cfg.Spawn.Col < 0 || cfg.Spawn.Col >= m.Width() {
		return nil, fmt.Errorf("%w: %v outside %dx%d maze", ErrSpawnBlocked, cfg.Spawn, m.Width(), m.Height())
	}
	if m.IsWall(cfg.Spawn) {
		return nil, fmt.Errorf("%w: %v is a wall", ErrSpawnBlocked, cfg.Spawn)
	}

	return &Engine{
		maze:      m,
		cfg:       cfg,
		pos:       cfg.Spawn,
		current:   Right,
		requested: Right,
		interval:  cfg.BaseInterval,
		moving:    true,
	}, nil
}

// candidate computes where a move in dir would land. The second result
// is false when the move would leave the maze vertically; columns wrap.
func (e *Engine) candidate(dir Direction) (maze.Position, bool) {
	dRow, dCol := dir.Delta()
	if dRow == 0 && dCol == 0 {
		return e.pos, false
	}
	row := e.pos.Row + dRow
	if !e.maze.InRows(row) {
		return e.pos, false
	}
	w := e.maze.Width()
	return maze.Position{Row: row, Col: (e.pos.Col + dCol + w) % w}, true
}

// CanMove reports whether a move in dir would succeed. It changes nothing.
func (e *Engine) CanMove(dir Direction) bool {
	next, ok := e.candidate(dir)
	return ok && !e.maze.IsWall(next)
}

// AttemptMove moves the actor one cell in dir if the cell is open and
// eats whatever is there. A blocked move leaves everything untouched.
func (e *Engine) AttemptMove(dir Direction) MoveOutcome {
	next, ok := e.candidate(dir)
	if !ok || e.maze.IsWall(next) {
		return MoveOutcome{Position: e.pos}
	}

	got := e.maze.Consume(next)
	e.score += got.Points
	e.pos = next
	return MoveOutcome{Moved: true, Position: next, Collected: got}
}

// SetRequestedDirection buffers the latest intent. Only the most recent
// call matters.
func (e *Engine) SetRequestedDirection(dir Direction) {
	e.requested = dir
}

// Step runs one tick: prefer the buffered turn, otherwise keep going
// straight, otherwise stay put. Then adapt the interval.
func (e *Engine) Step() TickResult {
	e.ticks++
	res := TickResult{Tick: e.ticks, Direction: e.current}

	switch {
	case e.requested != e.current && e.CanMove(e.requested):
		res.Direction = e.requested
		res.Move = e.AttemptMove(e.requested)
		if res.Move.Moved {
			e.current = e.requested
			res.Turned = true
		}
	case e.CanMove(e.current):
		res.Move = e.AttemptMove(e.current)
	default:
		res.Move = MoveOutcome{Position: e.pos}
	}

	e.moving = res.Move.Moved
	e.adaptInterval(res.Move.Moved)
	res.Interval = e.interval
	return res
}

// adaptInterval speeds up after a move and slows down after a stall,
// keeping the interval within [MinInterval, MaxInterval].
func (e *Engine) adaptInterval(moved bool) {
	if moved {
		next := time.Duration(float64(e.interval) * e.cfg.SpeedUp)
		e.interval = max(next, e.cfg.MinInterval)
		return
	}
	next := time.Duration(float64(e.interval) * e.cfg.SlowDown)
	e.interval = min(next, e.cfg.MaxInterval())
}

// Maze returns the maze the engine walks.
func (e *Engine) Maze() *maze.Maze {
	return e.maze
}

// Config returns the tuning the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Position returns the actor's cell.
func (e *Engine) Position() maze.Position {
	return e.pos
}

// Current returns the direction being executed.
func (e *Engine) Current() Direction {
	return e.current
}

// Requested returns the buffered intent.
func (e *Engine) Requested() Direction {
	return e.requested
}

// Score returns the points collected so far.
func (e *Engine) Score() int {
	return e.score
}

// Moving reports whether the last tick changed position.
func (e *Engine) Moving() bool {
	return e.moving
}

// Interval returns the current tick interval.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Ticks returns how many ticks have run.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Snapshot is a read-only view of the engine for renderers and tests.
type Snapshot struct {
	Tick      uint64
	Position  maze.Position
	Current   Direction
	Requested Direction
	Moving    bool
	Score     int
	Interval  time.Duration
	Remaining int
}

// Snapshot captures the engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:      e.ticks,
		Position:  e.pos,
		Current:   e.current,
		Requested: e.requested,
		Moving:    e.moving,
		Score:     e.score,
		Interval:  e.interval,
		Remaining: e.maze.Remaining(),
	}
}
