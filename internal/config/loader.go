package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "pacman.yaml"

// LoadPacman loads the game tuning.
// Search order: customPath -> ~/.pacmaze/configs/pacman.yaml ->
// ./configs/pacman.yaml -> embedded default -> hard-coded default.
// Missing keys keep their default values. Files on the search path that
// exist but fail to parse or validate are skipped with a warning on
// logger; a nil logger discards it.
func LoadPacman(customPath string, logger *log.Logger) (PacmanConfig, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		cfg, err := readFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			logger.Warn("skipping config", "path", path, "err", err)
			continue
		}
		return cfg, nil
	}

	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), nil
	}
	return cfg, nil
}

// Source reports which file LoadPacman would read, or "embedded".
func Source(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if cfg, err := readFile(path); err == nil && cfg.Validate() == nil {
			return path
		}
	}
	return "embedded"
}

func readFile(path string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacmaze", "configs", filename)
}
