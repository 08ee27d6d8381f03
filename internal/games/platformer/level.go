package platformer

import (
	"github.com/vovakirdan/coin-rush/internal/config"
	"github.com/vovakirdan/coin-rush/internal/core"
	"github.com/vovakirdan/coin-rush/internal/physics"
)

// Platform is one static level tile, centered on (X, Y).
type Platform struct {
	X, Y  float64
	Scale float64
	Size  float64 // Edge length after scaling
	Body  *physics.Body
}

// Rect returns the tile bounds.
func (p *Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Size, p.Size)
}

// PlatformSet collects generated tiles. With a World set every tile also
// gets a static body in the platform group.
type PlatformSet struct {
	World      *physics.World
	WorldWidth float64
	TileSize   float64
	Platforms  []*Platform
}

// GenerateRun appends tileCount tiles on row rowY.
//
// Unmirrored runs place tile i at (startOffset+i)*tile. Mirrored runs start at
// WorldWidth-startOffset and keep counting rightwards: the arithmetic is taken
// literally and the run is not reflected. A non-positive tileCount adds nothing.
func GenerateRun(set *PlatformSet, tileCount, startOffset int, rowY float64, mirrored bool, scale float64) []*Platform {
	if set == nil || tileCount <= 0 {
		return nil
	}

	tile := set.TileSize
	size := tile * scale
	start := len(set.Platforms)

	for i := 0; i < tileCount; i++ {
		var x float64
		if mirrored {
			x = set.WorldWidth - float64(startOffset) + float64(i)*tile
		} else {
			x = float64(startOffset+i) * tile
		}

		p := &Platform{X: x, Y: rowY, Scale: scale, Size: size}
		if set.World != nil && size > 0 {
			p.Body = set.World.AddStatic(x, rowY, size, size, GroupPlatform)
			p.Body.Data = p
		}
		set.Platforms = append(set.Platforms, p)
	}

	return set.Platforms[start:]
}

// Level is the static platform layout of a session.
type Level struct {
	PlatformSet
	runs [][]*Platform
}

// BuildLevel lays out every configured run in order.
func BuildLevel(w *physics.World, cfg config.PlatformerConfig) *Level {
	l := &Level{
		PlatformSet: PlatformSet{
			World:      w,
			WorldWidth: cfg.World.Width,
			TileSize:   cfg.World.TileSize,
		},
	}
	for _, r := range cfg.Level.Runs {
		tiles := GenerateRun(&l.PlatformSet, r.Tiles, r.Offset, r.Y, r.Mirrored, r.Scale)
		if len(tiles) > 0 {
			l.runs = append(l.runs, tiles)
		}
	}
	return l
}

// Bounds returns one rectangle per non-empty run covering all of its tiles.
func (l *Level) Bounds() []core.RectF {
	out := make([]core.RectF, 0, len(l.runs))
	for _, run := range l.runs {
		r := run[0].Rect()
		for _, p := range run[1:] {
			r = r.Union(p.Rect())
		}
		out = append(out, r)
	}
	return out
}
