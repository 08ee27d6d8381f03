package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/coin-rush/internal/config"
	"github.com/vovakirdan/coin-rush/internal/physics"
)

func TestGenerateRunUnmirrored(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		offset int
	}{
		{"from origin", 16, 0},
		{"with offset", 5, 3},
		{"single tile", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &PlatformSet{WorldWidth: 800, TileSize: 16}
			tiles := GenerateRun(set, tt.count, tt.offset, 200, false, 1)

			require.Len(t, tiles, tt.count)
			for i, p := range tiles {
				assert.Equal(t, float64((tt.offset+i)*16), p.X, "tile %d", i)
				assert.Equal(t, 200.0, p.Y)
				assert.Equal(t, 16.0, p.Size)
			}
		})
	}
}

func TestGenerateRunMirrored(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		offset int
	}{
		{"middle run", 20, 150},
		{"short run", 4, 290},
		{"zero offset", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &PlatformSet{WorldWidth: 800, TileSize: 16}
			tiles := GenerateRun(set, tt.count, tt.offset, 250, true, 1)

			require.Len(t, tiles, tt.count)
			for i, p := range tiles {
				assert.Equal(t, float64(800-tt.offset+i*16), p.X, "tile %d", i)
			}
		})
	}
}

func TestGenerateRunNoTiles(t *testing.T) {
	set := &PlatformSet{WorldWidth: 800, TileSize: 16}

	assert.Nil(t, GenerateRun(set, 0, 0, 100, false, 1))
	assert.Nil(t, GenerateRun(set, -3, 0, 100, true, 1))
	assert.Empty(t, set.Platforms)
	assert.Nil(t, GenerateRun(nil, 5, 0, 100, false, 1))
}

func TestGenerateRunAppends(t *testing.T) {
	set := &PlatformSet{WorldWidth: 800, TileSize: 16}
	GenerateRun(set, 3, 0, 100, false, 1)
	second := GenerateRun(set, 2, 10, 200, false, 1)

	assert.Len(t, set.Platforms, 5)
	require.Len(t, second, 2)
	assert.Equal(t, 160.0, second[0].X)
}

func TestGenerateRunScaledBodies(t *testing.T) {
	w := physics.NewWorld(800, 600, 300)
	set := &PlatformSet{World: w, WorldWidth: 800, TileSize: 16}

	tiles := GenerateRun(set, 2, 0, 584, false, 2)

	require.Len(t, tiles, 2)
	assert.Equal(t, 16.0, tiles[1].X, "scale does not change spacing")
	for _, p := range tiles {
		require.NotNil(t, p.Body)
		assert.True(t, p.Body.Static)
		assert.Equal(t, 32.0, p.Body.W)
		assert.Equal(t, 32.0, p.Body.H)
		assert.Equal(t, GroupPlatform, p.Body.Group)
	}
	assert.Len(t, w.Statics(), 2)
}

func TestBuildLevelDefault(t *testing.T) {
	w := physics.NewWorld(800, 600, 300)
	l := BuildLevel(w, config.DefaultPlatformerConfig())

	assert.Len(t, l.Platforms, 50+16+20+23+4)
	assert.Len(t, w.Statics(), len(l.Platforms))

	bounds := l.Bounds()
	require.Len(t, bounds, 5)

	ground := bounds[0]
	assert.Equal(t, -16.0, ground.Left())
	assert.Equal(t, 800.0, ground.Right())
	assert.Equal(t, 568.0, ground.Top())
	assert.Equal(t, 600.0, ground.Bottom())

	mirrored := bounds[2]
	assert.Equal(t, 650.0-8, mirrored.Left())
	assert.Equal(t, 650.0+19*16+8, mirrored.Right())
}

func TestBuildLevelSkipsEmptyRuns(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Level.Runs = []config.RunConfig{
		{Tiles: 0, Y: 100, Scale: 1},
		{Tiles: 2, Y: 300, Scale: 1},
	}

	l := BuildLevel(nil, cfg)

	assert.Len(t, l.Platforms, 2)
	assert.Len(t, l.Bounds(), 1)
	assert.Nil(t, l.Platforms[0].Body)
}
