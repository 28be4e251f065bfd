package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// presetTuning holds what a preset changes.
type presetTuning struct {
	moves   int
	palette int
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {moves: 30, palette: 3},
	DifficultyNormal: {moves: 20, palette: 4},
	DifficultyHard:   {moves: 15, palette: 5},
}

// ApplyPreset adjusts moves and the number of colors in play. The color
// count never exceeds the configured palette.
func ApplyPreset(cfg *HexlineConfig, preset DifficultyPreset) {
	p, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Rules.MaxMoves = p.moves
	cfg.Rules.Colors = min(p.palette, len(cfg.Palette))
}
