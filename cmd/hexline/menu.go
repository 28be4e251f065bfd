package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexline/internal/platform/tui"
	"github.com/vovakirdan/hexline/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start hexline in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press B on the game over screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  hexline menu
  hexline menu --fps 30
  hexline menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit || (menuResult.GameID == "" && !menuResult.WantsScoreboard) {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.GameID, "err", err)
			continue
		}

		logger.Info("starting", "mode", menuResult.GameID)
		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			return fmt.Errorf("cannot run game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
