// Package config provides YAML-based configuration loading and difficulty
// presets for hexline.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexline/internal/core"
	hexcore "github.com/vovakirdan/hexline/internal/games/hexline/core"
)

// HexlineConfig contains all configuration for a hexline board.
type HexlineConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Palette   []string        `yaml:"palette"`
	Rules     RulesConfig     `yaml:"rules"`
	Animation AnimationConfig `yaml:"animation"`
}

// GridConfig defines the board size.
type GridConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	HexSide float64 `yaml:"hex_side"`
}

// RulesConfig defines scoring and move limits.
type RulesConfig struct {
	Colors         int `yaml:"colors"` // How many palette entries are in play, 0 = all
	MaxMoves       int `yaml:"max_moves"`
	MinPathLength  int `yaml:"min_path_length"`
	BoomPathLength int `yaml:"boom_path_length"`
	ComboDivisor   int `yaml:"combo_divisor"`
	BoomBonus      int `yaml:"boom_bonus"`
}

// AnimationConfig defines cascade animation timing in milliseconds.
type AnimationConfig struct {
	RemoveMS int `yaml:"remove_ms"` // Removal flash
	FallMS   int `yaml:"fall_ms"`   // Fall with bounce
}

// ErrUnknownColor is returned when the palette names a color that does not exist.
var ErrUnknownColor = errors.New("config: unknown palette color")

// PaletteSize returns the number of colors in play.
func (c HexlineConfig) PaletteSize() int {
	if c.Rules.Colors <= 0 || c.Rules.Colors > len(c.Palette) {
		return len(c.Palette)
	}
	return c.Rules.Colors
}

// Colors resolves the palette names that are in play.
func (c HexlineConfig) Colors() ([]core.Color, error) {
	out := make([]core.Color, 0, c.PaletteSize())
	for _, name := range c.Palette[:c.PaletteSize()] {
		col, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		out = append(out, col)
	}
	return out, nil
}

// EngineRules converts the config into engine rules.
func (c HexlineConfig) EngineRules() hexcore.Rules {
	return hexcore.Rules{
		Width:          c.Grid.Width,
		Height:         c.Grid.Height,
		HexSide:        c.Grid.HexSide,
		PaletteSize:    c.PaletteSize(),
		MaxMoves:       c.Rules.MaxMoves,
		MinPathLength:  c.Rules.MinPathLength,
		BoomPathLength: c.Rules.BoomPathLength,
		ComboDivisor:   c.Rules.ComboDivisor,
		BoomBonus:      c.Rules.BoomBonus,
	}
}

// Validate checks palette names, engine rules and animation timing.
func (c HexlineConfig) Validate() error {
	if _, err := c.Colors(); err != nil {
		return err
	}
	if err := c.EngineRules().Validate(); err != nil {
		return fmt.Errorf("config: invalid rules: %w", err)
	}
	if c.Animation.RemoveMS < 0 || c.Animation.FallMS < 0 {
		return fmt.Errorf("config: animation durations must not be negative")
	}
	return nil
}
