package config

// ApplyPreset adjusts movement timing for a difficulty preset. Normal
// leaves the loaded values alone; fixed pins the interval to its base.
func ApplyPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	m := &cfg.Movement
	switch preset {
	case DifficultyEasy:
		m.BaseIntervalMS = m.BaseIntervalMS * 4 / 3
		m.MinIntervalMS = m.MinIntervalMS * 4 / 3
		m.SpeedUp = 0.97
	case DifficultyHard:
		m.BaseIntervalMS = m.BaseIntervalMS * 3 / 4
		m.MinIntervalMS = m.MinIntervalMS * 2 / 3
		m.SpeedUp = 0.9
		m.SlowDown = 1.2
	case DifficultyFixed:
		m.MinIntervalMS = m.BaseIntervalMS
		m.SpeedUp = 1
		m.SlowDown = 1
	}
	if m.MinIntervalMS < 1 {
		m.MinIntervalMS = 1
	}
	if m.MinIntervalMS > m.BaseIntervalMS {
		m.MinIntervalMS = m.BaseIntervalMS
	}
}
