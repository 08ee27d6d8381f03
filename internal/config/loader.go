package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.coinrush/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "platformer.yaml")); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML over the hard-coded defaults and validates the result.
func decode(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// Validate reports configuration values the simulation cannot run with.
// Level runs are not checked: the generator treats odd runs as no-ops.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %v", c.World.TileSize))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Spawn.MinCoins < 0 || c.Spawn.MaxCoins < c.Spawn.MinCoins {
		errs = append(errs, fmt.Errorf("coin batch range [%d, %d] is invalid", c.Spawn.MinCoins, c.Spawn.MaxCoins))
	}
	if c.Spawn.MaxCoinBounce < c.Spawn.MinCoinBounce {
		errs = append(errs, fmt.Errorf("coin bounce range [%v, %v) is invalid", c.Spawn.MinCoinBounce, c.Spawn.MaxCoinBounce))
	}
	if c.Spawn.EnemyMaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("enemy_max_speed must not be negative, got %d", c.Spawn.EnemyMaxSpeed))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coinrush", "configs", filename)
}
