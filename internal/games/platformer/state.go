// Package platformer implements Coin Rush, a single-screen platformer:
// run and jump across a fixed level, collect coins, avoid spiders.
//
// The simulation is split into small components that all operate on an
// explicit *State: the level generator, the spawn controller, the player
// controller and the collision resolver. Game wraps them for the registry.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/coin-rush/internal/config"
	"github.com/vovakirdan/coin-rush/internal/physics"
	"github.com/vovakirdan/coin-rush/internal/sprite"
)

// Body groups used for collision rules.
const (
	GroupPlayer   = "player"
	GroupPlatform = "platform"
	GroupCoin     = "coin"
	GroupEnemy    = "enemy"
)

// Event names reported in StepResult.Events.
const (
	EventCoinCollected = "coin_collected"
	EventCoinsSpawned  = "coins_spawned"
	EventEnemySpawned  = "enemy_spawned"
	EventGameOver      = "game_over"
)

// Coin is a collectible. Collection disables it for the rest of the session.
type Coin struct {
	ID     int
	Body   *physics.Body
	Anim   *sprite.Player
	active bool
}

// Active reports whether the coin can still be collected.
func (c *Coin) Active() bool {
	return c.active
}

// Enemy is a spider bouncing around the level. Enemies are never removed.
type Enemy struct {
	ID   int
	Body *physics.Body
}

// State is everything one session owns. Components receive it by pointer;
// there is no package-level scene state.
type State struct {
	Score    int
	GameOver bool
	HUD      string // Score label shown in the corner
	Tick     int

	Player  *Player
	Level   *Level
	Coins   []*Coin
	Enemies []*Enemy

	// Events raised during the current step.
	Events []string

	World *physics.World
	Anims *sprite.Library
	Rand  *Rand
	Cfg   config.PlatformerConfig

	nextID int
}

// NewState builds a fresh session: world, level, player and the first coin batch.
func NewState(cfg config.PlatformerConfig, seed int64) *State {
	s := &State{
		HUD:   "score: 0",
		World: physics.NewWorld(cfg.World.Width, cfg.World.Height, cfg.World.Gravity),
		Anims: NewAnimations(),
		Rand:  NewRand(seed),
		Cfg:   cfg,
	}

	s.Level = BuildLevel(s.World, cfg)
	s.Player = NewPlayer(s)
	WireCollisions(s)
	SpawnCoinBatch(s)
	s.Events = nil

	return s
}

// ActiveCoins counts coins that have not been collected.
func (s *State) ActiveCoins() int {
	n := 0
	for _, c := range s.Coins {
		if c.active {
			n++
		}
	}
	return n
}

// emit records an event for the current step.
func (s *State) emit(format string, args ...any) {
	s.Events = append(s.Events, fmt.Sprintf(format, args...))
}

func (s *State) newID() int {
	s.nextID++
	return s.nextID
}
