package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/coin-rush/internal/config"
)

const frame = 1.0 / 60.0

// emptyState returns a session with its opening coin batch removed, so tests
// control exactly which coins exist.
func emptyState(t *testing.T, seed int64) *State {
	t.Helper()
	s := NewState(config.DefaultPlatformerConfig(), seed)
	for _, c := range s.Coins {
		c.active = false
		c.Body.Disable()
	}
	s.Coins = nil
	s.Events = nil
	return s
}

// addCoin places a floating coin at (x, y).
func addCoin(s *State, x, y float64) *Coin {
	size := s.Cfg.Spawn.CoinSize
	c := &Coin{ID: s.newID(), active: true, Anim: newAnim(s.Anims, AnimCoin)}
	c.Body = s.World.AddDynamic(x, y, size, size, GroupCoin)
	c.Body.AllowGravity = false
	c.Body.Data = c
	s.Coins = append(s.Coins, c)
	return c
}

// addEnemy places a motionless spider at (x, y).
func addEnemy(s *State, x, y float64) *Enemy {
	size := s.Cfg.Spawn.EnemySize
	e := &Enemy{ID: s.newID()}
	e.Body = s.World.AddDynamic(x, y, size, size, GroupEnemy)
	e.Body.AllowGravity = false
	e.Body.Data = e
	s.Enemies = append(s.Enemies, e)
	return e
}

// settle steps the world until the player stands on something.
func settle(t *testing.T, s *State) {
	t.Helper()
	for i := 0; i < 300; i++ {
		s.World.Step(frame)
	}
	require.True(t, s.Player.Body.OnGround(), "player should rest on the ground, y=%v", s.Player.Body.Y)
}

func TestNewState(t *testing.T) {
	s := NewState(config.DefaultPlatformerConfig(), 7)

	assert.Equal(t, 0, s.Score)
	assert.False(t, s.GameOver)
	assert.Equal(t, "score: 0", s.HUD)
	assert.Equal(t, 100.0, s.Player.Body.X)
	assert.Equal(t, 450.0, s.Player.Body.Y)
	assert.Equal(t, MotionIdle, s.Player.Motion)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Events)

	n := s.ActiveCoins()
	assert.GreaterOrEqual(t, n, 3)
	assert.LessOrEqual(t, n, 10)
}

func TestActiveCoins(t *testing.T) {
	s := emptyState(t, 1)
	assert.Equal(t, 0, s.ActiveCoins())

	a := addCoin(s, 300, 100)
	addCoin(s, 500, 100)
	assert.Equal(t, 2, s.ActiveCoins())

	a.active = false
	assert.Equal(t, 1, s.ActiveCoins())
}

func TestPlayerLandsOnGround(t *testing.T) {
	s := emptyState(t, 1)
	settle(t, s)

	// Ground tiles are 32 tall and centered on y=584.
	assert.InDelta(t, 568-24, s.Player.Body.Y, 1e-6)
	assert.Zero(t, s.Player.Body.VY)
}

func TestCoinSpawnedInsideGroundComesToRest(t *testing.T) {
	for _, y := range []float64{565, 590} {
		s := emptyState(t, 1)
		c := addCoin(s, 300, y)
		c.Body.AllowGravity = true
		c.Body.BounceY = 0.3

		for i := 0; i < 600; i++ {
			s.World.Step(frame)
		}

		// Ground tiles span y 568..600, the coin is 16 tall.
		assert.InDelta(t, 560.0, c.Body.Y, 1e-6, "coin spawned at y=%v", y)
		assert.True(t, c.Body.OnGround(), "coin spawned at y=%v", y)
		assert.True(t, c.Active())
	}
}

func TestSpawnedCoinsStayInsideWorld(t *testing.T) {
	s := emptyState(t, 3)
	s.Player.Body.Disable()

	var coins []*Coin
	for range 20 {
		coins = append(coins, SpawnCoinBatch(s)...)
	}
	for i := 0; i < 900; i++ {
		s.World.Step(frame)
	}

	for _, c := range coins {
		r := c.Body.Rect()
		require.LessOrEqual(t, r.Bottom(), s.Cfg.World.Height+1e-6, "coin %d fell out at y=%v", c.ID, c.Body.Y)
		assert.True(t, c.Body.OnGround(), "coin %d should rest on a platform, y=%v", c.ID, c.Body.Y)
	}
}
