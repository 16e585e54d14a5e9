// Package pacman hosts the maze engine as a registry game: it turns host
// frames into scheduler polls, input actions into direction requests and
// engine state into a screen.
package pacman

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacmaze/internal/config"
	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacman/engine"
	"github.com/vovakirdan/pacmaze/internal/games/pacman/maze"
	"github.com/vovakirdan/pacmaze/internal/games/pacman/mazegen"
	"github.com/vovakirdan/pacmaze/internal/registry"
)

// ID is the registry key of the game.
const ID = "pacman"

var (
	configPath       string
	mazeOverride     string
	difficultyPreset = config.DifficultyNormal
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetMazeSource overrides the configured maze source ("classic" or
// "generated"). An empty string keeps the configured one.
func SetMazeSource(source string) {
	mazeOverride = source
}

// SetDifficultyPreset sets the difficulty preset from a string.
// Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("unknown difficulty, using normal", "preset", preset)
	}
	difficultyPreset = p
}

// SetLogger replaces the game logger. Logs are discarded by default
// because the TUI owns the terminal.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts the movement engine to the registry.Game interface.
type Game struct {
	rt       core.RuntimeConfig
	rng      *rand.Rand
	cfg      config.PacmanConfig
	engine   *engine.Engine
	sched    *engine.Scheduler
	clock    *engine.FrameClock
	frameDur time.Duration
	elapsed  time.Duration // Unpaused time, drives the mouth animation
	last     engine.TickResult
	cleared  bool
}

// New creates an unstarted game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Maze"
}

// Reset reloads the tuning and places a fresh actor in a fresh maze.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.frameDur = rt.FrameDuration()
	g.elapsed = 0
	g.last = engine.TickResult{}
	g.cleared = false

	cfg, err := config.LoadPacman(configPath, logger)
	if err != nil {
		logger.Error("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultPacmanConfig()
	}
	if mazeOverride != "" {
		cfg.Maze = mazeOverride
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.engine = newEngine(cfg, rt.Seed)
	g.clock = engine.NewFrameClock(time.Time{})
	g.sched = engine.NewScheduler(g.engine, g.clock)

	snap := g.engine.Snapshot()
	logger.Info("maze ready",
		"width", g.engine.Maze().Width(),
		"height", g.engine.Maze().Height(),
		"spawn", snap.Position,
		"collectibles", snap.Remaining,
		"difficulty", difficultyPreset,
		"seed", rt.Seed,
		"interval", snap.Interval,
	)
}

// newEngine builds the engine from tuning, falling back to the classic
// maze and default timing when the tuning cannot produce a playable one.
func newEngine(cfg config.PacmanConfig, seed int64) *engine.Engine {
	m, ecfg, err := Build(cfg, seed)
	if err == nil {
		var e *engine.Engine
		if e, err = engine.New(m, ecfg); err == nil {
			return e
		}
	}
	logger.Error("invalid maze setup, using classic defaults", "err", err)

	e, err := engine.New(maze.Classic(maze.DefaultScoring()), engine.DefaultConfig())
	if err != nil {
		panic("pacman: classic maze rejected: " + err.Error())
	}
	return e
}

// Build decodes the maze and engine settings described by cfg. The seed
// only matters for generated mazes.
func Build(cfg config.PacmanConfig, seed int64) (*maze.Maze, engine.Config, error) {
	scoring := maze.Scoring{Dot: cfg.Scoring.Dot, PowerPellet: cfg.Scoring.PowerPellet}

	layout := cfg.Layout
	if len(layout) == 0 && cfg.Maze == config.MazeGenerated {
		opts := mazegen.DefaultOptions()
		opts.Width = cfg.Generator.Width
		opts.Height = cfg.Generator.Height
		opts.Bias = cfg.Generator.Bias
		opts.Pellets = cfg.Generator.Pellets
		opts.Seed = seed

		var err error
		if layout, err = mazegen.Generate(opts); err != nil {
			return nil, engine.Config{}, err
		}
	}

	var m *maze.Maze
	if len(layout) == 0 {
		m = maze.Classic(scoring)
	} else {
		var err error
		if m, err = maze.New(layout, scoring); err != nil {
			return nil, engine.Config{}, err
		}
	}

	ecfg := engine.Config{
		Spawn:        maze.Position{Row: cfg.Spawn.Row, Col: cfg.Spawn.Col},
		BaseInterval: time.Duration(cfg.Movement.BaseIntervalMS) * time.Millisecond,
		MinInterval:  time.Duration(cfg.Movement.MinIntervalMS) * time.Millisecond,
		SpeedUp:      cfg.Movement.SpeedUp,
		SlowDown:     cfg.Movement.SlowDown,
	}
	if spawn, ok := m.Spawn(); ok {
		ecfg.Spawn = spawn
	}
	return m, ecfg, nil
}

// Step processes one host frame: restart, pause and the latest direction
// are applied first, then the frame clock advances and the scheduler gets
// its poll.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		logger.Info("restart", "score", g.engine.Score(), "ticks", g.engine.Ticks())
		rt := g.rt
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		running := g.sched.Toggle()
		logger.Debug("pause toggled", "running", running)
	}

	if a, ok := in.LastDirection(); ok {
		if dir, ok := engine.DirectionForAction(a); ok {
			g.engine.SetRequestedDirection(dir)
		}
	}

	g.clock.Advance(g.frameDur)
	if !g.sched.Running() {
		return core.StepResult{State: g.State()}
	}
	g.elapsed += g.frameDur

	res, ticked := g.sched.Frame()
	if ticked {
		g.last = res
		g.logTick(res)
	}
	return core.StepResult{State: g.State(), Ticked: ticked}
}

func (g *Game) logTick(res engine.TickResult) {
	if res.Turned {
		logger.Debug("turn", "tick", res.Tick, "dir", res.Direction, "pos", res.Move.Position)
	}
	switch got := res.Move.Collected; {
	case got.Collected:
		logger.Debug("collected", "tick", res.Tick, "item", got.Item, "points", got.Points, "score", g.engine.Score())
	case res.Move.Moved && g.engine.Maze().Collected(res.Move.Position):
		logger.Debug("retrace", "tick", res.Tick, "pos", res.Move.Position)
	}
	if !g.cleared && g.engine.Maze().Remaining() == 0 {
		g.cleared = true
		logger.Info("maze cleared", "tick", res.Tick, "score", g.engine.Score())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:   g.engine.Score(),
		Cleared: g.engine.Maze().Remaining() == 0,
		Paused:  !g.sched.Running(),
	}
}

// Engine exposes the underlying engine for hosts that need direct access.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Scheduler exposes the frame scheduler.
func (g *Game) Scheduler() *engine.Scheduler {
	return g.sched
}
