package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// It mirrors defaults/platformer.yaml and is used when the embedded file
// cannot be decoded.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Width:    800,
			Height:   600,
			Gravity:  300,
			TileSize: 16,
		},
		Player: PlayerConfig{
			StartX:      100,
			StartY:      450,
			Width:       32,
			Height:      48,
			Bounce:      0.1,
			RunSpeed:    160,
			JumpImpulse: -330,
		},
		Spawn: SpawnConfig{
			CoinSize:         16,
			MinCoins:         3,
			MaxCoins:         10,
			MinCoinBounce:    0.2,
			MaxCoinBounce:    0.4,
			LowCoinThreshold: 2,
			CoinReward:       10,
			EnemySize:        16,
			EnemyMaxSpeed:    300,
			EnemySeedVY:      20,
			EnemySpawnY:      16,
		},
		Level: LevelConfig{
			Runs: []RunConfig{
				{Tiles: 50, Offset: 0, Y: 584, Mirrored: false, Scale: 2}, // ground
				{Tiles: 16, Offset: 0, Y: 200, Mirrored: false, Scale: 1},
				{Tiles: 20, Offset: 150, Y: 250, Mirrored: true, Scale: 1},
				{Tiles: 23, Offset: 0, Y: 400, Mirrored: false, Scale: 1},
				{Tiles: 4, Offset: 290, Y: 300, Mirrored: true, Scale: 1},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "coinrush":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
