package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pacmaze/internal/games/pacman/maze"
)

// newTestEngine builds an engine on a custom layout with default timing.
func newTestEngine(t *testing.T, layout []string, spawn maze.Position) *Engine {
	t.Helper()
	m, err := maze.New(layout, maze.DefaultScoring())
	if err != nil {
		t.Fatalf("maze.New() failed: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Spawn = spawn
	e, err := New(m, cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

func TestInitialState(t *testing.T) {
	e, err := New(maze.Classic(maze.DefaultScoring()), DefaultConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if e.Position() != maze.ClassicSpawn {
		t.Errorf("Position() = %v, expected %v", e.Position(), maze.ClassicSpawn)
	}
	if e.Current() != Right || e.Requested() != Right {
		t.Errorf("directions = %v/%v, expected right/right", e.Current(), e.Requested())
	}
	if e.Interval() != 150*time.Millisecond {
		t.Errorf("Interval() = %v, expected 150ms", e.Interval())
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", e.Score())
	}
	if !e.Moving() {
		t.Error("Moving() should start true")
	}
}

func TestNewRejectsBadSpawn(t *testing.T) {
	m := maze.Classic(maze.DefaultScoring())

	tests := []struct {
		name  string
		spawn maze.Position
	}{
		{"wall", maze.Position{Row: 0, Col: 0}},
		{"row outside", maze.Position{Row: 40, Col: 1}},
		{"col outside", maze.Position{Row: 1, Col: 28}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Spawn = tc.spawn
			if _, err := New(m, cfg); !errors.Is(err, ErrSpawnBlocked) {
				t.Errorf("New() error = %v, expected ErrSpawnBlocked", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero base", func(c *Config) { c.BaseInterval = 0 }},
		{"zero floor", func(c *Config) { c.MinInterval = 0 }},
		{"floor above base", func(c *Config) { c.MinInterval = c.BaseInterval + time.Millisecond }},
		{"speed-up above one", func(c *Config) { c.SpeedUp = 1.5 }},
		{"speed-up zero", func(c *Config) { c.SpeedUp = 0 }},
		{"slow-down below one", func(c *Config) { c.SlowDown = 0.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrBadTiming) {
				t.Errorf("Validate() = %v, expected ErrBadTiming", err)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestWraparound(t *testing.T) {
	layout := []string{
		"W W",
		"   ",
		"W W",
	}

	e := newTestEngine(t, layout, maze.Position{Row: 1, Col: 0})
	out := e.AttemptMove(Left)
	if !out.Moved || e.Position() != (maze.Position{Row: 1, Col: 2}) {
		t.Errorf("Left from col 0: moved=%v pos=%v, expected (1,2)", out.Moved, e.Position())
	}

	out = e.AttemptMove(Right)
	if !out.Moved || e.Position() != (maze.Position{Row: 1, Col: 0}) {
		t.Errorf("Right from last col: moved=%v pos=%v, expected (1,0)", out.Moved, e.Position())
	}
}

func TestRowBoundary(t *testing.T) {
	layout := []string{
		" . ",
		" . ",
		" . ",
	}

	top := newTestEngine(t, layout, maze.Position{Row: 0, Col: 1})
	if top.CanMove(Up) {
		t.Error("CanMove(Up) at row 0 should be false")
	}
	if out := top.AttemptMove(Up); out.Moved || top.Position() != (maze.Position{Row: 0, Col: 1}) {
		t.Errorf("Up from row 0: moved=%v pos=%v", out.Moved, top.Position())
	}

	bottom := newTestEngine(t, layout, maze.Position{Row: 2, Col: 1})
	if bottom.CanMove(Down) {
		t.Error("CanMove(Down) at last row should be false")
	}
	if out := bottom.AttemptMove(Down); out.Moved || bottom.Position() != (maze.Position{Row: 2, Col: 1}) {
		t.Errorf("Down from last row: moved=%v pos=%v", out.Moved, bottom.Position())
	}
}

func TestWallBlocksWithoutConsuming(t *testing.T) {
	layout := []string{
		"WWWWW",
		"W. .W",
		"WWWWW",
	}
	e := newTestEngine(t, layout, maze.Position{Row: 1, Col: 2})

	// Walls above and below.
	for _, dir := range []Direction{Up, Down} {
		if e.CanMove(dir) {
			t.Errorf("CanMove(%v) should be false next to a wall", dir)
		}
		out := e.AttemptMove(dir)
		if out.Moved {
			t.Errorf("AttemptMove(%v) moved into a wall", dir)
		}
		if out.Collected.Collected {
			t.Errorf("AttemptMove(%v) collected from a wall", dir)
		}
	}

	if e.Position() != (maze.Position{Row: 1, Col: 2}) {
		t.Errorf("Position() = %v after blocked moves", e.Position())
	}
	if e.Score() != 0 || e.Maze().Remaining() != 2 {
		t.Errorf("blocked moves changed score=%d remaining=%d", e.Score(), e.Maze().Remaining())
	}
}

func TestCanMoveIsPure(t *testing.T) {
	layout := []string{
		"WWWW",
		"W..W",
		"WWWW",
	}
	e := newTestEngine(t, layout, maze.Position{Row: 1, Col: 1})

	for range 3 {
		if !e.CanMove(Right) {
			t.Fatal("CanMove(Right) should be true")
		}
	}
	if e.Position() != (maze.Position{Row: 1, Col: 1}) || e.Score() != 0 {
		t.Error("CanMove must not move or score")
	}
	if e.Maze().CellAt(maze.Position{Row: 1, Col: 2}) != maze.Dot {
		t.Error("CanMove must not consume")
	}
}

func TestIdempotentCollectionThroughEngine(t *testing.T) {
	layout := []string{
		"WWWWW",
		"W . W",
		"WWWWW",
	}
	e := newTestEngine(t, layout, maze.Position{Row: 1, Col: 1})

	e.AttemptMove(Right) // onto the dot
	e.AttemptMove(Right)
	e.AttemptMove(Left) // back over the eaten dot
	e.AttemptMove(Left)

	if e.Score() != 10 {
		t.Errorf("Score() = %d, expected 10 after crossing one dot twice", e.Score())
	}
}

func TestPriorityOverContinuation(t *testing.T) {
	layout := []string{
		"WWWWW",
		"W.W.W",
		"W...W",
		"WWWWW",
	}
	e := newTestEngine(t, layout, maze.Position{Row: 2, Col: 1})

	e.SetRequestedDirection(Up)
	res := e.Step()

	if !res.Turned || e.Current() != Up {
		t.Errorf("expected a turn to up, got turned=%v current=%v", res.Turned, e.Current())
	}
	if e.Position() != (maze.Position{Row: 1, Col: 1}) {
		t.Errorf("Position() = %v, expected (1,1)", e.Position())
	}
	if e.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", e.Score())
	}
}

func TestDeferredTurn(t *testing.T) {
	layout := []string{
		"WWWWWW",
		"WWW.WW",
		"W....W",
		"WWWWWW",
	}
	e := newTestEngine(t, layout, maze.Position{Row: 2, Col: 1})
	e.SetRequestedDirection(Up)

	want := []struct {
		pos     maze.Position
		current Direction
	}{
		{maze.Position{Row: 2, Col: 2}, Right},
		{maze.Position{Row: 2, Col: 3}, Right},
		{maze.Position{Row: 1, Col: 3}, Up},
	}

	for i, w := range want {
		e.Step()
		if e.Position() != w.pos || e.Current() != w.current {
			t.Fatalf("tick %d: pos=%v current=%v, expected %v %v", i+1, e.Position(), e.Current(), w.pos, w.current)
		}
		if e.Requested() != Up {
			t.Fatalf("tick %d: requested direction changed to %v", i+1, e.Requested())
		}
	}
}

func TestBlockedBothWays(t *testing.T) {
	layout := []string{
		"WWWW",
		"W  W",
		"WWWW",
	}
	e := newTestEngine(t, layout, maze.Position{Row: 1, Col: 2})
	e.SetRequestedDirection(Up)

	res := e.Step()
	if res.Move.Moved {
		t.Error("actor should stay put when both directions are blocked")
	}
	if e.Moving() {
		t.Error("Moving() should be false after a blocked tick")
	}
	if e.Current() != Right {
		t.Errorf("Current() = %v, a blocked request must not be adopted", e.Current())
	}

	// Turning around frees the actor.
	e.SetRequestedDirection(Left)
	res = e.Step()
	if !res.Move.Moved || !e.Moving() || e.Current() != Left {
		t.Errorf("expected move left, got moved=%v moving=%v current=%v", res.Move.Moved, e.Moving(), e.Current())
	}
}

func TestSpeedBounds(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("slows down to twice base", func(t *testing.T) {
		layout := []string{
			"WWW",
			"W W",
			"WWW",
		}
		e := newTestEngine(t, layout, maze.Position{Row: 1, Col: 1})

		prev := e.Interval()
		for i := range 50 {
			e.Step()
			if e.Interval() > cfg.MaxInterval() {
				t.Fatalf("tick %d: interval %v above cap %v", i+1, e.Interval(), cfg.MaxInterval())
			}
			if e.Interval() < prev {
				t.Fatalf("tick %d: interval shrank while stuck", i+1)
			}
			prev = e.Interval()
		}
		if e.Interval() != cfg.MaxInterval() {
			t.Errorf("Interval() = %v, expected to settle at %v", e.Interval(), cfg.MaxInterval())
		}
	})

	t.Run("speeds up to floor", func(t *testing.T) {
		e := newTestEngine(t, []string{" ... "}, maze.Position{Row: 0, Col: 0})

		prev := e.Interval()
		for i := range 50 {
			res := e.Step()
			if !res.Move.Moved {
				t.Fatalf("tick %d: ring row should always move", i+1)
			}
			if e.Interval() < cfg.MinInterval {
				t.Fatalf("tick %d: interval %v below floor %v", i+1, e.Interval(), cfg.MinInterval)
			}
			if e.Interval() > prev {
				t.Fatalf("tick %d: interval grew while moving", i+1)
			}
			prev = e.Interval()
		}
		if e.Interval() != cfg.MinInterval {
			t.Errorf("Interval() = %v, expected to settle at %v", e.Interval(), cfg.MinInterval)
		}
	})
}

func TestClassicScenario(t *testing.T) {
	e, err := New(maze.Classic(maze.DefaultScoring()), DefaultConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	e.SetRequestedDirection(Right)
	e.Step()
	if e.Position() != (maze.Position{Row: 17, Col: 15}) {
		t.Fatalf("after first tick Position() = %v, expected (17,15)", e.Position())
	}
	// (17,15) is a blank corridor cell in the reference maze.
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", e.Score())
	}

	out := e.AttemptMove(Up)
	if out.Moved || e.Position() != (maze.Position{Row: 17, Col: 15}) {
		t.Errorf("Up from (17,15) should be blocked, moved=%v pos=%v", out.Moved, e.Position())
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d after blocked move", e.Score())
	}

	// As a tick, the blocked request is buffered and the actor keeps going.
	e.SetRequestedDirection(Up)
	res := e.Step()
	if res.Turned || e.Position() != (maze.Position{Row: 17, Col: 16}) {
		t.Errorf("tick with blocked request: turned=%v pos=%v, expected straight to (17,16)", res.Turned, e.Position())
	}
}

func TestSnapshot(t *testing.T) {
	e := newTestEngine(t, []string{"W..W"}, maze.Position{Row: 0, Col: 1})
	e.Step()

	snap := e.Snapshot()
	if snap.Tick != 1 || snap.Score != 10 || snap.Remaining != 1 {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if snap.Position != (maze.Position{Row: 0, Col: 2}) || !snap.Moving {
		t.Errorf("Snapshot() position/moving = %v/%v", snap.Position, snap.Moving)
	}
}
