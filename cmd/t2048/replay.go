package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a saved game and verify it",
	Long: `Loads a replay, re-runs its moves from the recorded seed and prints the
final board. Exits with status 1 when the result differs from the saved
score.

The ID may be shortened to any unique prefix, as shown by 't2048 history'.

Examples:
  t2048 replay 3f2a9c1d`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.ResolveReplayID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entry, err := store.GetReplay(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replay %s (%s, %dx%d, seed %d, %d moves)\n\n",
		entry.ID, entry.GameID, entry.BoardSize, entry.BoardSize, entry.Seed, len(entry.Moves))

	res, err := t2048.Verify(entry.Seed, entry.BoardSize, entry.FourProb, entry.Moves, entry.FinalScore)
	if err != nil && !errors.Is(err, t2048.ErrReplayMismatch) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if res.Grid != nil {
		fmt.Print(res.Grid.String())
		fmt.Println()
		fmt.Printf("Score: %d (saved %d)\n", res.Score, entry.FinalScore)
	}

	if err != nil {
		fmt.Printf("Result: MISMATCH (%v)\n", err)
		os.Exit(1)
	}
	fmt.Println("Result: OK")
}
