package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexline/internal/platform/tui"
	"github.com/vovakirdan/hexline/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a board",
	Long: `Start a board in the given mode (default: hexline).

Controls:
  Mouse drag       - Draw a line through same-colored cells
  Arrows/WASD/hjkl - Move the cursor
  Space            - Start or finish a line at the cursor
  Enter            - Finish the line
  Esc              - Cancel the line
  X                - Trigger the boom cell under the cursor
  P                - Pause
  R                - Restart (after game over)
  B                - Back to menu (paused or game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options (standard mode only):
  easy    - 30 moves, 3 colors
  normal  - 20 moves, 4 colors
  hard    - 15 moves, 5 colors

Examples:
  hexline play
  hexline play hexline_easy
  hexline play --difficulty hard --seed 7
  hexline play --config ./my-board.yaml --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultMode
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'hexline list' to see available modes)", gameID)
	}
	if err := checkConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	player := configureGames(logger, flagSound)
	defer player.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "mode", gameID, "seed", flagSeed)
	if _, err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
