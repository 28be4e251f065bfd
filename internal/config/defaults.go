package config

import (
	_ "embed"

	hexcore "github.com/vovakirdan/hexline/internal/games/hexline/core"
)

//go:embed defaults/hexline.yaml
var defaultHexlineYAML []byte

// DefaultHexlineConfig returns the built-in configuration, used when no
// YAML source can be read.
func DefaultHexlineConfig() HexlineConfig {
	return HexlineConfig{
		Grid: GridConfig{
			Width:   7,
			Height:  9,
			HexSide: 1,
		},
		Palette: []string{"bright_red", "bright_green", "bright_blue", "bright_yellow", "bright_magenta", "bright_cyan"},
		Rules: RulesConfig{
			Colors:         4,
			MaxMoves:       20,
			MinPathLength:  hexcore.DefaultMinPathLength,
			BoomPathLength: hexcore.DefaultBoomPathLength,
			ComboDivisor:   hexcore.DefaultComboDivisor,
			BoomBonus:      hexcore.DefaultBoomBonus,
		},
		Animation: AnimationConfig{
			RemoveMS: 250,
			FallMS:   450,
		},
	}
}
