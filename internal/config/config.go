// Package config provides YAML-based session configuration for the board
// games, with embedded defaults and user overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/games/goban"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ChessConfig contains the configuration for chess sessions.
// The board is always 8x8.
type ChessConfig struct {
	Mode string `yaml:"mode"` // classic, rollover or mirror
}

// GoConfig contains the configuration for Go sessions.
type GoConfig struct {
	Size   int     `yaml:"size"`    // 9, 13 or 19
	Mode   string  `yaml:"mode"`    // classic, rollover or mirror
	Komi   float64 `yaml:"komi"`    // Added to White's score
	KoRule string  `yaml:"ko_rule"` // simple or superko
}

// Validate checks that every field holds a supported value.
func (c ChessConfig) Validate() error {
	if _, err := topology.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Runtime converts the config into the values passed to Game.Reset.
func (c ChessConfig) Runtime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Mode, _ = topology.ParseMode(c.Mode)
	return cfg
}

// Validate checks that every field holds a supported value.
func (c GoConfig) Validate() error {
	if !goban.ValidSize(c.Size) {
		return fmt.Errorf("%w: board size %d (want one of %v)", ErrInvalidConfig, c.Size, goban.Sizes)
	}
	if _, err := topology.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Komi < 0 {
		return fmt.Errorf("%w: negative komi %g", ErrInvalidConfig, c.Komi)
	}
	if _, err := goban.ParseKoRule(c.KoRule); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Runtime converts the config into the values passed to Game.Reset.
func (c GoConfig) Runtime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.BoardSize = c.Size
	cfg.Mode, _ = topology.ParseMode(c.Mode)
	cfg.Komi = c.Komi
	cfg.KoRule = c.KoRule
	return cfg
}
