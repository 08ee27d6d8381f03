// Package config provides YAML-based game configuration loading for the
// platformer: world constants, player tuning, spawn rules and level layout.
package config

// PlatformerConfig contains all configuration for the Coin Rush platformer.
type PlatformerConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Level  LevelConfig  `yaml:"level"`
}

// WorldConfig defines the logical world the simulation runs in.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Gravity  float64 `yaml:"gravity"`   // Downward acceleration, units/s^2
	TileSize float64 `yaml:"tile_size"` // Unscaled platform tile edge
}

// PlayerConfig defines the player body and its controls.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Bounce      float64 `yaml:"bounce"`
	RunSpeed    float64 `yaml:"run_speed"`    // Horizontal speed while a direction is held
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity applied on jump (negative = up)
}

// SpawnConfig defines coin batches, scoring and enemy spawns.
type SpawnConfig struct {
	CoinSize         float64 `yaml:"coin_size"`
	MinCoins         int     `yaml:"min_coins"`
	MaxCoins         int     `yaml:"max_coins"`
	MinCoinBounce    float64 `yaml:"min_coin_bounce"`
	MaxCoinBounce    float64 `yaml:"max_coin_bounce"`
	LowCoinThreshold int     `yaml:"low_coin_threshold"` // Active coins below this trigger a batch + enemy
	CoinReward       int     `yaml:"coin_reward"`
	EnemySize        float64 `yaml:"enemy_size"`
	EnemyMaxSpeed    int     `yaml:"enemy_max_speed"` // Horizontal speed drawn from [-max, max] without 0
	EnemySeedVY      float64 `yaml:"enemy_seed_vy"`
	EnemySpawnY      float64 `yaml:"enemy_spawn_y"`
}

// LevelConfig is the designer-authored list of platform runs.
type LevelConfig struct {
	Runs []RunConfig `yaml:"runs"`
}

// RunConfig describes one call to the level generator.
type RunConfig struct {
	Tiles    int     `yaml:"tiles"`
	Offset   int     `yaml:"offset"`
	Y        float64 `yaml:"y"`
	Mirrored bool    `yaml:"mirrored"`
	Scale    float64 `yaml:"scale"`
}
