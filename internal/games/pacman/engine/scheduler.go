package engine

import "time"

// Clock is the monotonic time source the scheduler polls.
type Clock interface {
	Now() time.Time
}

// FrameClock is a clock advanced by the host, one frame at a time.
// Driving the scheduler from it makes runs replayable.
type FrameClock struct {
	now time.Time
}

// NewFrameClock starts a clock at the given instant.
func NewFrameClock(start time.Time) *FrameClock {
	return &FrameClock{now: start}
}

// Now returns the clock's current instant.
func (c *FrameClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *FrameClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Scheduler polls the clock once per host frame and runs at most one
// engine tick per frame.
type Scheduler struct {
	engine   *Engine
	clock    Clock
	lastTick time.Time
	running  bool
}

// NewScheduler creates a running scheduler. The first tick fires one
// interval after creation.
func NewScheduler(e *Engine, clock Clock) *Scheduler {
	return &Scheduler{
		engine:   e,
		clock:    clock,
		lastTick: clock.Now(),
		running:  true,
	}
}

// Frame is the per-frame callback. It returns the tick result and true
// when a tick ran.
func (s *Scheduler) Frame() (TickResult, bool) {
	if !s.running {
		return TickResult{}, false
	}

	now := s.clock.Now()
	if now.Sub(s.lastTick) < s.engine.Interval() {
		return TickResult{}, false
	}

	// Anchor to now rather than lastTick+interval so a late frame never
	// triggers a catch-up burst.
	s.lastTick = now
	return s.engine.Step(), true
}

// Start resumes ticking. Engine state is left as it was.
func (s *Scheduler) Start() {
	s.running = true
}

// Pause stops ticking. Engine state is left as it was.
func (s *Scheduler) Pause() {
	s.running = false
}

// Toggle flips between running and paused and returns the new state.
func (s *Scheduler) Toggle() bool {
	s.running = !s.running
	return s.running
}

// Running reports whether frames advance the engine.
func (s *Scheduler) Running() bool {
	return s.running
}

// Engine returns the engine being driven.
func (s *Scheduler) Engine() *Engine {
	return s.engine
}
