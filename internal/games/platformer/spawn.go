package platformer

import (
	"math/rand"
)

// Rand is the session RNG. It is seeded once so a session replays exactly
// from its seed and input sequence.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a seeded RNG.
func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform integer in [lo, hi]. Swapped bounds are reordered.
func (r *Rand) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// FloatBetween returns a uniform float in [lo, hi).
func (r *Rand) FloatBetween(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

// SpawnCoinBatch drops a random batch of coins anywhere in the world.
// Each coin gets its own vertical bounce and starts spinning.
func SpawnCoinBatch(s *State) []*Coin {
	sc := s.Cfg.Spawn
	n := s.Rand.Between(sc.MinCoins, sc.MaxCoins)

	coins := make([]*Coin, 0, n)
	for i := 0; i < n; i++ {
		x := s.Rand.Between(0, int(s.Cfg.World.Width))
		y := s.Rand.Between(0, int(s.Cfg.World.Height))

		c := &Coin{ID: s.newID(), active: true}
		c.Body = s.World.AddDynamic(float64(x), float64(y), sc.CoinSize, sc.CoinSize, GroupCoin)
		c.Body.Data = c
		c.Body.BounceY = s.Rand.FloatBetween(sc.MinCoinBounce, sc.MaxCoinBounce)
		c.Anim = newAnim(s.Anims, AnimCoin)

		coins = append(coins, c)
	}

	s.Coins = append(s.Coins, coins...)
	s.emit("%s n=%d", EventCoinsSpawned, n)
	return coins
}

// MaybeSpawnEnemy refills the level once active coins run low: a new coin
// batch plus exactly one spider on the half of the world away from playerX.
// Returns nothing while enough coins remain.
func MaybeSpawnEnemy(s *State, playerX float64) ([]*Coin, *Enemy) {
	if s.ActiveCoins() >= s.Cfg.Spawn.LowCoinThreshold {
		return nil, nil
	}

	coins := SpawnCoinBatch(s)
	return coins, spawnEnemy(s, playerX)
}

func spawnEnemy(s *State, playerX float64) *Enemy {
	sc := s.Cfg.Spawn
	width := int(s.Cfg.World.Width)
	half := width / 2

	var x int
	if playerX < float64(half) {
		x = s.Rand.Between(half, width)
	} else {
		x = s.Rand.Between(0, half)
	}

	e := &Enemy{ID: s.newID()}
	e.Body = s.World.AddDynamic(float64(x), sc.EnemySpawnY, sc.EnemySize, sc.EnemySize, GroupEnemy)
	e.Body.Data = e
	e.Body.SetBounce(1, 1)
	e.Body.CollideWorldBounds = true
	e.Body.SetVelocity(float64(enemySpeed(s)), sc.EnemySeedVY)

	s.Enemies = append(s.Enemies, e)
	s.emit("%s x=%d", EventEnemySpawned, x)
	return e
}

// enemySpeed draws the horizontal speed of a new spider, uniform over
// [-max, max] without zero so every spider moves. A non-positive max is
// taken as 1.
func enemySpeed(s *State) int {
	limit := max(s.Cfg.Spawn.EnemyMaxSpeed, 1)
	for {
		if v := s.Rand.Between(-limit, limit); v != 0 {
			return v
		}
	}
}
