package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board and Tab to browse
saved replays. Leaving a finished or paused game returns to the menu; the
best score of each board is kept until you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Replay history
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 60
  t2048 menu --db ./replays.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig(loadConfig())

	logger, closeLog := newTUILogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// One game per board for the whole run so high scores survive
	games := make(map[string]registry.Game)

	for {
		best := make(map[string]int, len(games))
		for id, g := range games {
			best[id] = g.State().HighScore
		}

		menuResult, err := tui.RunMenu(cfg, best)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg.ScreenW, cfg.ScreenH = menuResult.Config.ScreenW, menuResult.Config.ScreenH

		if menuResult.Quit {
			return
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, ok := games[menuResult.GameID]
		if !ok {
			game, err = registry.Create(menuResult.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}
			games[menuResult.GameID] = game
		}

		result, runErr := tui.Run(game, store, logger, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			return
		}
		// Keep the configured seed; only the window size carries over
		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH

		if !result.BackToMenu {
			return
		}
	}
}
