package core

import (
	"errors"
	"fmt"
)

// Construction errors. Invalid rules reject the session outright.
var (
	ErrInvalidDimensions   = errors.New("core: grid dimensions must be positive")
	ErrPaletteTooSmall     = errors.New("core: palette needs at least 3 colors")
	ErrPathTooShort        = errors.New("core: minimum path length must be at least 3")
	ErrInvalidMoves        = errors.New("core: max moves must be positive")
	ErrInvalidComboDivisor = errors.New("core: combo divisor must be positive")
	ErrInvalidHexSide      = errors.New("core: hex side length must be positive")
	ErrBoomPathTooShort    = errors.New("core: boom path length must not be below the minimum path length")
)

// Defaults for the tunables that have one.
const (
	DefaultMinPathLength  = 3
	DefaultBoomPathLength = 5
	DefaultComboDivisor   = 3
	DefaultBoomBonus      = 10
	MinPaletteSize        = 3
)

// Rules is the fixed per-session configuration of the engine.
type Rules struct {
	Width          int
	Height         int
	HexSide        float64
	PaletteSize    int
	MaxMoves       int
	MinPathLength  int
	BoomPathLength int
	ComboDivisor   int
	BoomBonus      int
}

// DefaultRules returns a 7x9 board with four colors and twenty moves.
func DefaultRules() Rules {
	return Rules{
		Width:          7,
		Height:         9,
		HexSide:        1,
		PaletteSize:    4,
		MaxMoves:       20,
		MinPathLength:  DefaultMinPathLength,
		BoomPathLength: DefaultBoomPathLength,
		ComboDivisor:   DefaultComboDivisor,
		BoomBonus:      DefaultBoomBonus,
	}
}

// Validate checks the rules. The returned error wraps one of the Err* values.
func (r Rules) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, r.Width, r.Height)
	}
	if r.PaletteSize < MinPaletteSize {
		return fmt.Errorf("%w: got %d", ErrPaletteTooSmall, r.PaletteSize)
	}
	if r.MinPathLength < DefaultMinPathLength {
		return fmt.Errorf("%w: got %d", ErrPathTooShort, r.MinPathLength)
	}
	if r.BoomPathLength < r.MinPathLength {
		return fmt.Errorf("%w: got %d, minimum %d", ErrBoomPathTooShort, r.BoomPathLength, r.MinPathLength)
	}
	if r.MaxMoves <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMoves, r.MaxMoves)
	}
	if r.ComboDivisor <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidComboDivisor, r.ComboDivisor)
	}
	if r.HexSide <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidHexSide, r.HexSide)
	}
	return nil
}
