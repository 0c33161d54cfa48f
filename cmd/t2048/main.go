// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list               - List board variants
//	t2048 play [variant]     - Play a board (default: 2048)
//	t2048 menu               - Pick boards interactively
//	t2048 serve              - Start SSH server for remote play
//	t2048 history [variant]  - Show recent replays
//	t2048 replay <id>        - Re-run a saved game and verify it
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/replays.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board in one of four directions; equal neighbours merge and
their sum is added to your score. A new tile appears after every move
that changes the board. The game ends when no move is possible.

Available commands:
  list     - Show board variants
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  history  - Show recent replays
  replay   - Re-run a saved game

Examples:
  t2048 play
  t2048 play 2048_big --seed 42
  t2048 menu
  t2048 serve --ssh :2222
  t2048 replay 3f2a9c1d`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = tui.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", flagLogLevel)
		os.Exit(1)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// newTUILogger logs to ~/.arcade/t2048.log so output does not tear the
// alternate screen. The returned close func is always safe to call.
func newTUILogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "t2048"), func() {}
	}

	path := filepath.Join(home, ".arcade", "t2048.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard, "t2048"), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, "t2048"), func() {}
	}

	return newLogger(f, "t2048"), func() { f.Close() }
}

// loadConfig loads the game config and points the game package at the
// same file. Invalid configuration is fatal.
func loadConfig() config.T2048Config {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	t2048.SetConfigPath(flagConfig)
	return cfg
}

// runtimeConfig sizes the run to the terminal and applies --fps/--seed.
func runtimeConfig(gameCfg config.T2048Config) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = gameCfg.TUI.TickRate
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
}

// openStore opens the replay database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
