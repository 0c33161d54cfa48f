package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recent replays",
	Long: `Lists the most recently saved replays, newest first.

Without a variant every board is shown. Pass an ID (or its first
characters) to 't2048 replay' to re-run a game.

Examples:
  t2048 history
  t2048 history 2048_mini --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of replays to show")
}

func runHistory(_ *cobra.Command, args []string) {
	var gameID string
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	replays, err := store.RecentReplays(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(replays) == 0 {
		fmt.Println("No replays saved yet.")
		return
	}

	fmt.Printf("  %-8s  %-10s  %7s  %5s  %5s  %s\n", "ID", "Board", "Score", "Max", "Moves", "Date")
	fmt.Printf("  %-8s  %-10s  %7s  %5s  %5s  %s\n", "--", "-----", "-----", "---", "-----", "----")
	for _, r := range replays {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-10s  %7d  %5d  %5d  %s\n",
			id, r.GameID, r.FinalScore, r.MaxTile, len(r.Moves),
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}
