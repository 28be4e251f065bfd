// Package hexline is the terminal front-end of the hex match-line puzzle.
// It feeds player input to the engine session, keeps a view model from the
// events it returns and plays the cascade animations.
package hexline

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexline/internal/audio"
	"github.com/vovakirdan/hexline/internal/config"
	"github.com/vovakirdan/hexline/internal/core"
	hexcore "github.com/vovakirdan/hexline/internal/games/hexline/core"
	"github.com/vovakirdan/hexline/internal/registry"
)

// Mode selects the difficulty a registered game starts with.
type Mode int

const (
	ModeStandard Mode = iota // Config file and --difficulty decide
	ModeEasy
	ModeHard
)

// scorePopTicks is how long the "+N" next to the score stays visible.
const scorePopTicks = 45

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	cuePlayer        audio.Player = audio.NopPlayer{}
	logger                        = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used by the standard mode.
// Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetCuePlayer routes sound cues to p. A nil player silences them.
func SetCuePlayer(p audio.Player) {
	if p == nil {
		p = audio.NopPlayer{}
	}
	cuePlayer = p
}

// SetLogger sets the logger for game events. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("hexline", func() registry.Game { return New() })
	registry.Register("hexline_easy", func() registry.Game { return NewWithMode(ModeEasy) })
	registry.Register("hexline_hard", func() registry.Game { return NewWithMode(ModeHard) })
}

// cellView is what the screen shows for one slot. It follows engine events
// and lags behind the grid while a cascade is animating.
type cellView struct {
	color       int
	boom        bool
	highlighted bool
	in          int
	out         int
}

// Game implements registry.Game for hexline.
type Game struct {
	mode Mode

	runtime core.RuntimeConfig
	cfg     config.HexlineConfig
	colors  []core.Color
	session *hexcore.Session
	layout  Layout
	anim    animator

	view     []cellView
	cursor   int  // Slot under the keyboard cursor
	keyDrag  bool // Path was started from the keyboard
	paused   bool
	tooSmall bool

	lastDelta int
	popTicks  int
}

// New creates a game in standard mode.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewWithMode creates a game with a fixed difficulty.
func NewWithMode(m Mode) *Game {
	return &Game{mode: m}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	switch g.mode {
	case ModeEasy:
		return "hexline_easy"
	case ModeHard:
		return "hexline_hard"
	}
	return "hexline"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	switch g.mode {
	case ModeEasy:
		return "Hexline (Easy)"
	case ModeHard:
		return "Hexline (Hard)"
	}
	return "Hexline"
}

func (g *Game) preset() config.DifficultyPreset {
	switch g.mode {
	case ModeEasy:
		return config.DifficultyEasy
	case ModeHard:
		return config.DifficultyHard
	}
	return difficultyPreset
}

// Reset loads the config and deals a new board from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Commands refuse a bad config before a game exists. Here it falls back.
	cfg, err := config.Resolve(configPath, g.preset())
	if err != nil {
		logger.Error("invalid config, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultHexlineConfig()
		config.ApplyPreset(&cfg, g.preset())
	}
	g.cfg = cfg
	g.colors, _ = cfg.Colors()

	session, err := hexcore.NewSession(cfg.EngineRules(), rand.New(rand.NewSource(runtime.Seed)))
	if err != nil {
		// Resolve validated these rules.
		panic(err)
	}
	g.session = session

	g.anim = newAnimator(
		msToTicks(g.cfg.Animation.RemoveMS, runtime.TickRate),
		msToTicks(g.cfg.Animation.FallMS, runtime.TickRate),
	)
	g.syncView()
	g.cursor = 0
	g.keyDrag = false
	g.paused = false
	g.lastDelta = 0
	g.popTicks = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	r := g.session.Rules()
	logger.Info("new board", "mode", g.ID(), "seed", runtime.Seed,
		"size", r.Width*r.Height, "colors", r.PaletteSize, "moves", r.MaxMoves)
}

// Resize recomputes the board placement without touching the game.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	r := g.session.Rules()
	g.layout = NewLayout(w, h, r.Width, r.Height, r.HexSide)
	minW, minH := g.layout.MinScreen()
	g.tooSmall = w < minW || h < minH
}

// syncView copies the grid into the view model.
func (g *Game) syncView() {
	grid := g.session.Grid()
	g.view = make([]cellView, grid.Len())
	for i := range g.view {
		c := grid.Cell(i)
		g.view[i] = cellView{
			color:       c.Color,
			boom:        c.Boom,
			highlighted: c.Highlighted,
			in:          c.Incoming,
			out:         c.Outgoing,
		}
	}
}

// State returns the current game state. The game is reported over only
// after the last cascade has finished playing.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.Score(),
		GameOver:  g.session.IsGameOver() && !g.anim.Busy(),
		Paused:    g.paused,
		BestCombo: g.session.BestCombo(),
		MovesUsed: g.session.Rules().MaxMoves - g.session.MovesLeft(),
		Seed:      g.runtime.Seed,
	}
}

// Snapshot returns the engine state for replays and determinism checks.
func (g *Game) Snapshot() hexcore.Snapshot {
	return g.session.Snapshot()
}

// apply folds one engine batch into the view, the animator, the log and
// the speaker.
func (g *Game) apply(events []hexcore.Event) {
	if len(events) == 0 {
		return
	}
	for _, c := range cuesFor(events) {
		cuePlayer.Play(c)
	}

	locked := false
	for _, ev := range events {
		switch e := ev.(type) {
		case hexcore.CellHighlighted:
			g.view[e.Slot].highlighted = true
		case hexcore.CellUnhighlighted:
			v := &g.view[e.Slot]
			v.highlighted = false
			v.in = hexcore.NoDirection
			v.out = hexcore.NoDirection
		case hexcore.LineSegment:
			if e.Kind == hexcore.LineIncoming {
				g.view[e.Slot].in = e.Neighbor
			} else {
				g.view[e.Slot].out = e.Neighbor
			}
		case hexcore.CellRemoved, hexcore.CellContentChanged, hexcore.CellMarkedForFall:
			g.anim.collect(ev)
		case hexcore.ScoreChanged:
			g.lastDelta = e.Delta
			g.popTicks = scorePopTicks
		case hexcore.ComboChanged:
			logger.Debug("path scored", "combo", e.Combo, "score", g.session.Score(), "moves", g.session.MovesLeft())
		case hexcore.BoomTriggered:
			logger.Debug("boom", "slot", e.Slot, "cleared", len(e.Cleared))
		case hexcore.InteractionLocked:
			locked = locked || e.Locked
		case hexcore.GameOver:
			logger.Info("game over", "mode", g.ID(), "score", e.Score, "best_combo", g.session.BestCombo())
		}
	}

	if locked {
		g.anim.start()
		if g.anim.phase == PhaseFall {
			g.applyContent(g.anim.takeContent())
		}
	} else if !g.anim.Busy() {
		g.applyContent(g.anim.takeContent())
	}
}

func (g *Game) applyContent(changes []hexcore.CellContentChanged) {
	for _, c := range changes {
		v := &g.view[c.Slot]
		v.color = c.Color
		v.boom = c.Boom
	}
}

// advanceAnimation steps the cascade and unlocks the session when it ends.
func (g *Game) advanceAnimation() {
	if !g.anim.Busy() {
		return
	}
	fallStarted, done := g.anim.step()
	if fallStarted {
		g.applyContent(g.anim.takeContent())
		cuePlayer.Play(audio.CueBlockFallDown)
	}
	if done {
		g.apply(g.session.CascadeComplete())
		g.syncView()
	}
}
