package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-rush/internal/core"
	"github.com/vovakirdan/coin-rush/internal/platform/tui"
	"github.com/vovakirdan/coin-rush/internal/registry"
	"github.com/vovakirdan/coin-rush/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play Coin Rush",
	Long: `Start a game of Coin Rush.

Controls:
  ←/A, →/D     - Run left/right
  ↑/W/Space    - Jump (only from the ground)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.coinrush/screenshots
  Q/Ctrl+C     - Quit

Examples:
  coinrush play
  coinrush play --seed 7
  coinrush play --config ./my-level.yaml
  coinrush play --debug   # events go to ~/.coinrush/debug.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger("coinrush")

	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "error", err)
		logger.Print("Run 'coinrush list' to see available games.")
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	opts := tui.Options{Player: currentUser()}

	if flagDebug {
		fl, closeLog, logErr := fileLogger()
		defer closeLog()
		if logErr != nil {
			logger.Warn("debug log disabled", "error", logErr)
		} else {
			opts.Logger = fl
		}
	}

	// A missing store only disables score saving.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		opts.Store = store
	}

	runErr := tui.Run(game, cfg, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		os.Exit(1)
	}
}

// currentUser names local runs in the score table.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
