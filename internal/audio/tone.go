package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// note is one step of a cue melody. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// tone is a sine oscillator with a linear attack and release.
type tone struct {
	freq    float64
	rate    beep.SampleRate
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func newTone(freq float64, dur time.Duration, rate beep.SampleRate) *tone {
	total := rate.N(dur)
	edge := rate.N(5 * time.Millisecond)
	if edge*2 > total {
		edge = total / 2
	}
	return &tone{freq: freq, rate: rate, total: total, attack: edge, release: edge}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		var v float64
		if t.freq > 0 {
			v = math.Sin(2*math.Pi*t.phase) * t.gain()
			t.phase += t.freq / float64(t.rate)
			t.phase -= math.Floor(t.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) gain() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// melodies maps each cue to its notes.
var melodies = map[Cue][]note{
	CueSelectedBlock: {{660, 40 * time.Millisecond}},
	CueRemovedBlock:  {{440, 60 * time.Millisecond}, {330, 60 * time.Millisecond}},
	CueGetScore:      {{784, 70 * time.Millisecond}, {1047, 110 * time.Millisecond}},
	CueBoom:          {{110, 90 * time.Millisecond}, {82, 160 * time.Millisecond}},
	CueBlockFallDown: {{220, 35 * time.Millisecond}},
	CueGameOver: {
		{523, 150 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{392, 150 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{262, 300 * time.Millisecond},
	},
}

// cueStreamer builds a fresh streamer for c at the given linear volume.
// Returns nil for unknown cues.
func cueStreamer(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	notes, ok := melodies[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n.freq, n.dur, rate))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// math.Log2(0) is -Inf, so a zero volume is expressed as silence.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
