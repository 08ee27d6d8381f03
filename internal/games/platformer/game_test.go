package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/coin-rush/internal/core"
	"github.com/vovakirdan/coin-rush/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// inputScript runs right, jumps now and then, and turns back left.
func inputScript(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		switch {
		case i%120 < 70:
			frames[i].Set(core.ActionRight)
		default:
			frames[i].Set(core.ActionLeft)
		}
		if i%45 == 0 {
			frames[i].Set(core.ActionUp)
		}
	}
	return frames
}

func play(g *Game, frames []core.InputFrame) {
	for _, in := range frames {
		if g.Step(in).State.GameOver {
			return
		}
	}
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists("coinrush"))

	g, err := registry.Create("coinrush")
	require.NoError(t, err)
	assert.Equal(t, "coinrush", g.ID())
	assert.Equal(t, "Coin Rush", g.Title())
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	s := g.Session()
	require.NotNil(t, s)
	assert.Equal(t, core.GameState{}, g.State())
	assert.Equal(t, "score: 0", s.HUD)
	assert.Equal(t, 100.0, s.Player.Body.X)
	assert.Equal(t, 450.0, s.Player.Body.Y)

	play(g, inputScript(200))
	g.Reset(testRuntime(42))

	assert.Equal(t, 0, g.Session().Tick)
	assert.Equal(t, 0, g.State().Score)
	assert.False(t, g.State().GameOver)
}

func TestGameDeterminism(t *testing.T) {
	frames := inputScript(900)

	g1 := New()
	g1.Reset(testRuntime(12345))
	play(g1, frames)

	g2 := New()
	g2.Reset(testRuntime(12345))
	play(g2, frames)

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1.Score, snap2.Score)
	assert.Equal(t, snap1.Tick, snap2.Tick)

	g3 := New()
	g3.Reset(testRuntime(54321))
	snap3 := g3.Snapshot()
	first := New()
	first.Reset(testRuntime(12345))
	firstSnap := first.Snapshot()
	assert.NotEqual(t, firstSnap.Hash(), snap3.Hash(), "different seeds lay out different coins")
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	res := g.Step(input(core.ActionPause))
	require.True(t, res.State.Paused)
	before := g.Snapshot()

	for i := 0; i < 20; i++ {
		g.Step(input(core.ActionRight, core.ActionUp))
	}
	after := g.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash())

	res = g.Step(input(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, before.Tick+1, g.Session().Tick)
}

func TestGameOverFreezesAndRestarts(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	s := g.Session()
	addEnemy(s, s.Player.Body.X, s.Player.Body.Y)

	res := g.Step(core.NewInputFrame())
	require.True(t, res.State.GameOver)
	assert.Contains(t, strings.Join(res.Events, ","), EventGameOver)
	frozen := g.Snapshot()

	for i := 0; i < 20; i++ {
		g.Step(input(core.ActionLeft, core.ActionUp, core.ActionPause))
	}
	after := g.Snapshot()
	assert.Equal(t, frozen.Hash(), after.Hash())

	res = g.Step(input(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.NotSame(t, s, g.Session())
	assert.Equal(t, 0, g.Session().Score)
	assert.Empty(t, g.Session().Enemies)
	assert.Equal(t, uint32(0), g.Session().Player.Body.Tint)
}

func TestGameStepReportsEvents(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	s := g.Session()
	s.Cfg.Spawn.LowCoinThreshold = 0
	for _, c := range s.Coins {
		c.active = false
		c.Body.Disable()
	}
	addCoin(s, s.Player.Body.X, s.Player.Body.Y)

	res := g.Step(core.NewInputFrame())

	assert.Equal(t, 10, res.State.Score)
	require.NotEmpty(t, res.Events)
	assert.True(t, strings.HasPrefix(res.Events[0], EventCoinCollected))

	res = g.Step(core.NewInputFrame())
	for _, ev := range res.Events {
		assert.False(t, strings.HasPrefix(ev, EventCoinsSpawned), "no refill with threshold 0")
	}
}

func TestGameAnimatesCoins(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	s := g.Session()
	require.NotEmpty(t, s.Coins)

	for i := 0; i < 7; i++ {
		g.Step(core.NewInputFrame())
	}

	for _, c := range s.Coins {
		if c.Active() {
			assert.Equal(t, 1, c.Anim.Frame(), "coin spins at 10fps")
		}
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "score: 0")
	out := screen.String()
	assert.Contains(t, out, string(PlatformChar))
	assert.Contains(t, out, string(PlayerChar))
	assert.Contains(t, screen.Row(23), string(PlatformChar), "ground fills the bottom rows")

	g.paused = true
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
	g.paused = false

	s := g.Session()
	Defeat(s, s.Player, nil)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")

	px := int(s.Player.Body.X * 80 / 800)
	py := int(s.Player.Body.Y * 24 / 600)
	assert.Equal(t, core.ColorBrightRed, screen.At(px, py).Color)
}

func TestRenderBeforeReset(t *testing.T) {
	screen := core.NewScreen(10, 4)
	New().Render(screen)
	assert.Equal(t, strings.Repeat(" ", 10), screen.Row(0))
}

func TestSnapshotEncodeRoundTrip(t *testing.T) {
	g := New()
	g.Reset(testRuntime(8))
	play(g, inputScript(120))
	addEnemy(g.Session(), 700, 100)
	snap := g.Snapshot()

	data, err := snap.Encode()
	require.NoError(t, err)
	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)

	assert.Equal(t, snap, decoded)
	assert.Equal(t, snap.Hash(), decoded.Hash())
}

func TestRunSummary(t *testing.T) {
	g := New()
	seed, ticks, enemies := g.RunSummary()
	assert.Zero(t, seed)
	assert.Zero(t, ticks)
	assert.Zero(t, enemies)

	g.Reset(testRuntime(77))
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	addEnemy(g.Session(), 700, 100)

	seed, ticks, enemies = g.RunSummary()
	assert.Equal(t, int64(77), seed)
	assert.Equal(t, 5, ticks)
	assert.Equal(t, 1, enemies)

	Defeat(g.Session(), g.Session().Player, nil)
	g.Step(input(core.ActionRestart))
	seed, _, _ = g.RunSummary()
	assert.Equal(t, int64(78), seed)
}

func TestEncodeStateMatchesSnapshot(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))
	play(g, inputScript(90))

	data, err := g.EncodeState()
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, snap.Tick, decoded.Tick)
	assert.Equal(t, snap.Score, decoded.Score)
	assert.Equal(t, snap.Player, decoded.Player)
	assert.Len(t, decoded.Coins, len(snap.Coins))
	assert.Equal(t, snap.Hash(), g.StateHash())

	other := New()
	other.Reset(testRuntime(11))
	play(other, inputScript(90))
	assert.Equal(t, g.StateHash(), other.StateHash())
}
