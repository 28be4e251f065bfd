// Package audio plays short synthesized sound cues for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies a sound played in response to a game event.
type Cue int

const (
	CueSelectedBlock Cue = iota
	CueRemovedBlock
	CueGetScore
	CueBoom
	CueBlockFallDown
	CueGameOver
)

var cueNames = [...]string{
	CueSelectedBlock: "selected_block",
	CueRemovedBlock:  "removed_block",
	CueGetScore:      "get_score",
	CueBoom:          "boom",
	CueBlockFallDown: "block_fall_down",
	CueGameOver:      "game_over",
}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// Player plays cues. Play must not block the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// NopPlayer discards every cue.
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}
func (NopPlayer) Close()   {}

// DefaultVolume is the linear gain applied to every cue.
const DefaultVolume = 0.3

// BeepPlayer mixes cue tones into the system speaker.
type BeepPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewBeepPlayer initializes the speaker and starts an empty mixer on it.
func NewBeepPlayer(volume float64) (*BeepPlayer, error) {
	p := &BeepPlayer{mixer: &beep.Mixer{}, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues c on the mixer.
func (p *BeepPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	s := cueStreamer(c, p.volume, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer. Later calls to Play are ignored.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// New returns a speaker-backed player when enabled. On failure it returns a
// NopPlayer together with the error so callers can warn and keep going.
func New(enabled bool) (Player, error) {
	if !enabled {
		return NopPlayer{}, nil
	}
	p, err := NewBeepPlayer(DefaultVolume)
	if err != nil {
		return NopPlayer{}, err
	}
	return p, nil
}
