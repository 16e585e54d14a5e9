// Package config loads pacmaze tuning from YAML and applies difficulty
// presets on top of it.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// PacmanConfig contains all tuning for the maze game.
type PacmanConfig struct {
	Movement  MovementConfig  `yaml:"movement"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Maze      string          `yaml:"maze"` // "classic" or "generated"
	Generator GeneratorConfig `yaml:"generator"`
	Layout    []string        `yaml:"layout"` // Overrides Maze when set
}

// Maze sources.
const (
	MazeClassic   = "classic"
	MazeGenerated = "generated"
)

// GeneratorConfig sizes randomly generated mazes.
type GeneratorConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Bias    float64 `yaml:"bias"`
	Pellets int     `yaml:"pellets"`
}

// MovementConfig defines the adaptive tick timing.
type MovementConfig struct {
	BaseIntervalMS int     `yaml:"base_interval_ms"`
	MinIntervalMS  int     `yaml:"min_interval_ms"`
	SpeedUp        float64 `yaml:"speed_up"`
	SlowDown       float64 `yaml:"slow_down"`
}

// ScoringConfig defines the value of each collectible.
type ScoringConfig struct {
	Dot         int `yaml:"dot"`
	PowerPellet int `yaml:"power_pellet"`
}

// SpawnConfig is the actor's starting cell. A 'P' in a custom layout
// takes precedence.
type SpawnConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Validate checks value ranges. It does not check the spawn against the
// maze; the engine does that once the layout is decoded.
func (c PacmanConfig) Validate() error {
	m := c.Movement
	switch {
	case m.BaseIntervalMS <= 0:
		return fmt.Errorf("%w: movement.base_interval_ms must be positive, got %d", ErrInvalidConfig, m.BaseIntervalMS)
	case m.MinIntervalMS <= 0 || m.MinIntervalMS > m.BaseIntervalMS:
		return fmt.Errorf("%w: movement.min_interval_ms must be in (0, %d], got %d", ErrInvalidConfig, m.BaseIntervalMS, m.MinIntervalMS)
	case m.SpeedUp <= 0 || m.SpeedUp > 1:
		return fmt.Errorf("%w: movement.speed_up must be in (0, 1], got %v", ErrInvalidConfig, m.SpeedUp)
	case m.SlowDown < 1:
		return fmt.Errorf("%w: movement.slow_down must be >= 1, got %v", ErrInvalidConfig, m.SlowDown)
	case c.Scoring.Dot < 0 || c.Scoring.PowerPellet < 0:
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalidConfig)
	case c.Spawn.Row < 0 || c.Spawn.Col < 0:
		return fmt.Errorf("%w: spawn must not be negative, got (%d,%d)", ErrInvalidConfig, c.Spawn.Row, c.Spawn.Col)
	case c.Maze != "" && c.Maze != MazeClassic && c.Maze != MazeGenerated:
		return fmt.Errorf("%w: maze must be %q or %q, got %q", ErrInvalidConfig, MazeClassic, MazeGenerated, c.Maze)
	case c.Generator.Bias < 0 || c.Generator.Bias > 1:
		return fmt.Errorf("%w: generator.bias must be in [0, 1], got %v", ErrInvalidConfig, c.Generator.Bias)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset resolves a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	name := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if p == name {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
}
