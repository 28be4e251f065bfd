// hexline is a hexagonal match-line puzzle for the terminal.
//
// Usage:
//
//	hexline play [mode]     - Play a board (hexline, hexline_easy, hexline_hard)
//	hexline menu            - Pick a mode interactively
//	hexline serve           - Start SSH server for remote play
//	hexline scores [mode]   - Show high scores
//	hexline list            - List available modes
//	hexline config          - Print the effective board config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.hexline/scores.db)
//	--config <path>       - Load a custom board config
//	--difficulty <name>   - easy, normal or hard
//	--sound               - Play sound cues
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexline/internal/audio"
	"github.com/vovakirdan/hexline/internal/config"
	"github.com/vovakirdan/hexline/internal/core"
	"github.com/vovakirdan/hexline/internal/games/hexline"
	"github.com/vovakirdan/hexline/internal/storage"
)

const defaultMode = "hexline"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexline",
	Short: "Hexline - connect same-colored cells on a hex board",
	Long: `Hexline is a puzzle played on a hexagonal grid. Drag a line through
neighbouring cells of the same color, release to clear them, and chain
clears into combos before your moves run out. Long lines leave a boom
cell behind that blasts everything around it.

Available commands:
  play     - Play a board directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all modes
  config   - Print the effective board config

Examples:
  hexline play
  hexline play hexline_hard --seed 42
  hexline menu --sound
  hexline serve --ssh :2222
  hexline scores hexline_easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexline/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Interactive commands own the
// terminal, so without --log-file their logs go nowhere.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, _ := log.ParseLevel(flagLogLevel)

	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "hexline",
	})
	return logger, closer, nil
}

// configureGames hands the global flags to the hexline modes before any of
// them is created. The returned player must be closed on exit.
func configureGames(logger *log.Logger, sound bool) audio.Player {
	hexline.SetConfigPath(flagConfig)
	hexline.SetDifficultyPreset(flagDifficulty)
	hexline.SetLogger(logger)

	player, err := audio.New(sound)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	hexline.SetCuePlayer(player)
	return player
}

// checkConfig refuses to start when the board config cannot be played.
func checkConfig() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if _, err := config.Resolve(flagConfig, preset); err != nil {
		return fmt.Errorf("invalid board config: %w", err)
	}
	return nil
}

// runtimeConfig sizes the board to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}
