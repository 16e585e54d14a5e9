package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the hard-coded tuning used when even the
// embedded YAML cannot be read.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Movement: MovementConfig{
			BaseIntervalMS: 150,
			MinIntervalMS:  100,
			SpeedUp:        0.95,
			SlowDown:       1.1,
		},
		Scoring: ScoringConfig{
			Dot:         10,
			PowerPellet: 50,
		},
		Spawn: SpawnConfig{
			Row: 17,
			Col: 14,
		},
		Maze: MazeClassic,
		Generator: GeneratorConfig{
			Width:   21,
			Height:  15,
			Bias:    0.2,
			Pellets: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
