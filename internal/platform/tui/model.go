package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-rush/internal/core"
	"github.com/vovakirdan/coin-rush/internal/registry"
	"github.com/vovakirdan/coin-rush/internal/storage"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// RunReporter is implemented by games that can describe the session that
// just ended. The model stores these details with the score.
type RunReporter interface {
	RunSummary() (seed int64, ticks, enemies int)
}

// StateDumper is implemented by games that can serialize their session.
// Screenshots then get a machine-readable twin and game over logs the hash.
type StateDumper interface {
	EncodeState() ([]byte, error)
	StateHash() uint64
}

// Options configures a Model. Every field is optional.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Player string // Name stored with saved runs
}

// Model is the Bubble Tea model running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	triggers   core.InputFrame // One-shot actions for the next tick
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	cfg = cfg.WithDefaults(time.Now())

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:    opts.Store,
		logger:   logger,
		player:   opts.Player,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		holds:    NewHoldTracker(DefaultHoldTicks(cfg.TickRate)),
		triggers: core.NewInputFrame(),
	}
}

// playHeight is the screen height left for the game.
func playHeight(h int) int {
	return max(h-footerHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case isDirection(action):
		m.holds.Press(action)
	case action == core.ActionPause:
		m.holds.Release()
		m.triggers.Set(action)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.triggers.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The game draws in world
// coordinates, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.triggers.Clone()
	m.holds.Apply(&frame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	m.holds.Advance()
	m.triggers.Clear()

	for _, ev := range result.Events {
		m.logger.Debug("game event", "game", m.game.ID(), "event", ev)
	}

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.holds.Release()
		m.logger.Debug("game restarted", "game", m.game.ID())
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Zero scores are not kept and a failing
// store never interrupts play.
func (m Model) saveRun() {
	m.logger.Info("game over", "game", m.game.ID(), "player", m.player, "score", m.gameState.Score)
	if d, ok := m.game.(StateDumper); ok {
		m.logger.Debug("final state", "game", m.game.ID(), "hash", fmt.Sprintf("%016x", d.StateHash()))
	}

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if r, ok := m.game.(RunReporter); ok {
		run.Seed, run.Ticks, run.Enemies = r.RunSummary()
	}

	best, err := m.store.PlayerBest(run.GameID, run.Player)
	if err != nil {
		m.logger.Warn("could not read personal best", "game", run.GameID, "error", err)
	}

	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "error", err)
		return
	}
	if run.Score > best {
		m.logger.Info("new personal best", "game", run.GameID, "player", run.Player, "score", run.Score, "previous", best)
	}
	m.logger.Debug("run saved", "game", run.GameID, "score", run.Score)
}

// saveScreenshot saves the current screen, and the encoded game state when
// the game supports it, under ~/.coinrush/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	path, err := m.writeScreenshot(filepath.Join(home, ".coinrush", "screenshots"), time.Now())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// writeScreenshot writes <id>_<time>.txt into dir, plus <id>_<time>.msgpack
// for a StateDumper. It returns the text file path.
func (m *Model) writeScreenshot(dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	m.game.Render(m.screen)
	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), now.Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}

	if d, ok := m.game.(StateDumper); ok {
		data, err := d.EncodeState()
		if err != nil {
			return "", fmt.Errorf("tui: encode state: %w", err)
		}
		if err := os.WriteFile(base+".msgpack", data, 0o600); err != nil {
			return "", fmt.Errorf("tui: write state: %w", err)
		}
	}
	return base + ".txt", nil
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
