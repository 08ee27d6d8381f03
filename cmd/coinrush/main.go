// coinrush is a single-screen platformer for the terminal: run, jump,
// collect coins and keep away from the spiders.
//
// Usage:
//
//	coinrush play            - Play Coin Rush
//	coinrush list            - List available games
//	coinrush scores          - Show the best runs
//	coinrush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.coinrush/scores.db)
//	--config <path> - Use a custom game config YAML
//	--debug         - Log game events at debug level
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-rush/internal/games/platformer"
)

const defaultGameID = "coinrush"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinrush",
	Short: "Coin Rush - a terminal platformer",
	Long: `Coin Rush is a single-screen platformer played in the terminal.
Collect coins for points; every time the coins run low a new batch
drops in together with a spider. Touch a spider and the run is over.

Available commands:
  play     - Play Coin Rush
  list     - Show all available games
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  coinrush play
  coinrush play --seed 42
  coinrush scores
  coinrush serve --ssh :2222`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		platformer.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.coinrush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger returns the command logger. Debug raises the level so game
// events are reported too.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fileLogger logs to ~/.coinrush/debug.log so the terminal UI stays clean.
// The returned close func is never nil.
func fileLogger() (*log.Logger, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".coinrush")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "coinrush",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
