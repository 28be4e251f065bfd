package hexline

import (
	"github.com/vovakirdan/hexline/internal/audio"
	hexcore "github.com/vovakirdan/hexline/internal/games/hexline/core"
)

// cuesFor maps one engine batch to the sounds it should play, each at most
// once and in first-occurrence order. Stepping back along the path plays the
// removed-block cue; cleared cells are covered by the score and boom cues.
// The fall cue is played by the animator when cells start falling, not here.
func cuesFor(events []hexcore.Event) []audio.Cue {
	var out []audio.Cue
	seen := make(map[audio.Cue]bool)
	add := func(c audio.Cue) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, ev := range events {
		switch ev.(type) {
		case hexcore.CellHighlighted:
			add(audio.CueSelectedBlock)
		case hexcore.BoomTriggered:
			add(audio.CueBoom)
		case hexcore.PathBacktracked:
			add(audio.CueRemovedBlock)
		case hexcore.ScoreChanged:
			add(audio.CueGetScore)
		case hexcore.GameOver:
			add(audio.CueGameOver)
		}
	}
	return out
}
