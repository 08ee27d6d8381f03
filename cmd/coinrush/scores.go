package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-rush/internal/platform/tui"
	"github.com/vovakirdan/coin-rush/internal/registry"
	"github.com/vovakirdan/coin-rush/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs",
	Long: `Display the best runs for a game with player, spiders faced and
time survived.

Examples:
  coinrush scores
  coinrush scores --limit 25
  coinrush scores --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := newLogger("coinrush")

	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, ok := registry.Lookup(gameID)
	if !ok {
		logger.Error("unknown game", "game", gameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open scores database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		logger.Error("cannot read runs", "error", err)
		return
	}
	stats, err := store.GameStats(gameID)
	if err != nil {
		logger.Error("cannot read stats", "error", err)
		return
	}

	fmt.Print(tui.RenderScores("Best runs - "+game.Title, runs, stats, flagFPS))
}
