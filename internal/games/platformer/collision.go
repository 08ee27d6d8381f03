package platformer

import (
	"fmt"

	"github.com/vovakirdan/coin-rush/internal/physics"
)

// DefeatTint is applied to the player when a spider gets them.
const DefeatTint uint32 = 0xff0000

// Outcome describes what one resolver call changed.
type Outcome struct {
	ScoreDelta   int
	SpawnedCoins []*Coin
	SpawnedEnemy *Enemy
	GameOver     bool // The call ended the session
}

// WireCollisions declares the solid and overlap rules of a session.
// Overlap callbacks forward to Collect and Defeat.
func WireCollisions(s *State) {
	w := s.World
	w.Collide(GroupPlayer, GroupPlatform)
	w.Collide(GroupEnemy, GroupPlatform)
	w.Collide(GroupCoin, GroupPlatform)

	w.Overlap(GroupPlayer, GroupCoin, func(a, b *physics.Body) {
		p, okP := a.Data.(*Player)
		c, okC := b.Data.(*Coin)
		if okP && okC {
			Collect(s, p, c)
		}
	})
	w.Overlap(GroupPlayer, GroupEnemy, func(a, b *physics.Body) {
		p, okP := a.Data.(*Player)
		e, okE := b.Data.(*Enemy)
		if okP && okE {
			Defeat(s, p, e)
		}
	})
}

// Collect handles the player touching a coin. Inactive coins and finished
// sessions are ignored, so repeated overlaps cannot score twice.
func Collect(s *State, p *Player, c *Coin) Outcome {
	if s.GameOver || c == nil || !c.active {
		return Outcome{}
	}

	c.active = false
	c.Body.Disable()

	reward := s.Cfg.Spawn.CoinReward
	s.Score += reward
	s.HUD = fmt.Sprintf("Score: %d", s.Score)
	s.emit("%s id=%d score=%d", EventCoinCollected, c.ID, s.Score)

	coins, enemy := MaybeSpawnEnemy(s, p.Body.X)
	return Outcome{ScoreDelta: reward, SpawnedCoins: coins, SpawnedEnemy: enemy}
}

// Defeat ends the session when a spider reaches the player: physics stops,
// the player turns red and falls back to the idle frame. Only the first call
// has any effect.
func Defeat(s *State, p *Player, _ *Enemy) Outcome {
	if s.GameOver {
		return Outcome{}
	}

	s.World.Pause()
	p.Body.Tint = DefeatTint
	p.Anim.Play(AnimIdle, false)
	p.Motion = MotionIdle
	s.GameOver = true
	s.emit("%s score=%d", EventGameOver, s.Score)

	return Outcome{GameOver: true}
}
