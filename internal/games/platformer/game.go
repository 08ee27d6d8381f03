package platformer

import (
	"github.com/vovakirdan/coin-rush/internal/config"
	"github.com/vovakirdan/coin-rush/internal/core"
	"github.com/vovakirdan/coin-rush/internal/registry"
)

// Game adapts a Coin Rush session to the registry.Game interface and adds
// the shell controls: pause and restart.
type Game struct {
	state    *State
	runtime  core.RuntimeConfig
	cfg      config.PlatformerConfig
	paused   bool
	restarts int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Coin Rush game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "coinrush"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Coin Rush"
}

// Reset starts a new session. A config that fails to load falls back to the
// built-in defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.restarts = 0
	g.start()
}

func (g *Game) start() {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	g.cfg = cfg
	g.paused = false
	// Each restart draws a new layout but stays reproducible from the seed.
	g.state = NewState(cfg, g.runtime.Seed+int64(g.restarts))
}

// Step advances the session by one tick: player input, physics and overlap
// callbacks, then animations.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		g.Reset(g.runtime)
	}
	s := g.state

	if s.GameOver {
		if in.Has(core.ActionRestart) {
			g.restarts++
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.FrameSeconds()
	s.Tick++
	s.Events = s.Events[:0]

	ControlPlayer(s, in)
	s.World.Step(dt)
	animate(s, dt)

	var events []string
	if len(s.Events) > 0 {
		events = append(events, s.Events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// animate advances every visible animation. A finished session is frozen.
func animate(s *State, dt float64) {
	if s.GameOver {
		return
	}
	s.Player.Anim.Update(dt)
	for _, c := range s.Coins {
		if c.active {
			c.Anim.Update(dt)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// RunSummary describes the current session for the score store: the seed it
// was laid out from, ticks simulated and spiders spawned.
func (g *Game) RunSummary() (seed int64, ticks, enemies int) {
	seed = g.runtime.Seed + int64(g.restarts)
	if g.state == nil {
		return seed, 0, 0
	}
	return seed, g.state.Tick, len(g.state.Enemies)
}

// Session exposes the running session for inspection.
func (g *Game) Session() *State {
	return g.state
}

// Register the game with the registry
func init() {
	registry.Register("coinrush", func() registry.Game {
		return New()
	})
}
