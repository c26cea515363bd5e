package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/torus-boards/internal/core"
)

// appDir is the directory name used under the user config home.
const appDir = "boards"

// LoadChess loads chess configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/boards/chess.yaml -> ./configs/chess.yaml -> embedded default
func LoadChess(customPath string) (ChessConfig, error) {
	cfg, err := load("chess.yaml", customPath, defaultChessYAML, DefaultChessConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadGo loads Go configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/boards/go.yaml -> ./configs/go.yaml -> embedded default
func LoadGo(customPath string) (GoConfig, error) {
	cfg, err := load("go.yaml", customPath, defaultGoYAML, DefaultGoConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadRuntime loads the configuration of a registered game and converts it
// for Game.Reset.
func LoadRuntime(gameID, customPath string) (core.RuntimeConfig, error) {
	switch gameID {
	case "chess":
		cfg, err := LoadChess(customPath)
		return cfg.Runtime(), err
	case "go":
		cfg, err := LoadGo(customPath)
		return cfg.Runtime(), err
	default:
		return core.DefaultConfig(), fmt.Errorf("%w: no configuration for game %q", ErrInvalidConfig, gameID)
	}
}

// load decodes the first config found into a copy of fallback, so keys
// missing from the file keep their default values.
func load[T any](filename, customPath string, embedded []byte, fallback T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := fallback
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := fallback
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path of an existing user config file, or empty.
func userConfigPath(filename string) string {
	path, err := xdg.SearchConfigFile(filepath.Join(appDir, filename))
	if err != nil {
		return ""
	}
	return path
}
