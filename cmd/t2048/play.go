package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/tui-2048/internal/games/t2048" // registers board variants
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

const defaultVariant = "2048"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default: 2048).

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P                 - Pause
  R/Enter           - Play again (after game over)
  Esc/B             - Leave (when paused or after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Finished games are saved as replays; see 't2048 history'.

Examples:
  t2048 play
  t2048 play 2048_mini
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	cfg := runtimeConfig(loadConfig())

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newTUILogger()
	store := openStore(logger)

	_, runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
