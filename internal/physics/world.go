// Package physics implements a small arcade physics world: gravity, velocity
// integration, solid collision rules between body groups, world bounds and
// overlap callbacks. Broad phase runs on a resolv spatial hash; narrow phase
// and resolution are exact per-axis AABB sweeps.
package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

// CellSize is the edge of a broad-phase cell in world units.
const CellSize = 16

// epsilon absorbs float drift when bodies rest exactly against each other.
const epsilon = 1e-6

// OverlapFunc is invoked for each overlapping pair of an overlap rule.
// a belongs to the rule's first group, b to the second.
type OverlapFunc func(a, b *Body)

type overlapRule struct {
	a, b string
	fn   OverlapFunc
}

// World owns every body and the rules between their groups.
type World struct {
	Width   float64
	Height  float64
	Gravity float64 // Downward acceleration in units/s^2

	space    *resolv.Space
	bodies   []*Body // Dynamic bodies in creation order
	statics  []*Body
	solids   map[string][]string
	overlaps []overlapRule
	paused   bool
}

// NewWorld creates a world of the given size. The broad phase is padded by a
// few cells so bodies hanging over the edges still collide.
func NewWorld(width, height, gravity float64) *World {
	pad := 4 * CellSize
	return &World{
		Width:   width,
		Height:  height,
		Gravity: gravity,
		space:   resolv.NewSpace(int(math.Ceil(width))+pad, int(math.Ceil(height))+pad, CellSize, CellSize),
		solids:  make(map[string][]string),
	}
}

// AddStatic creates an immovable solid body centered on (x, y).
func (w *World) AddStatic(x, y, width, height float64, group string) *Body {
	b := w.newBody(x, y, width, height, group)
	b.Static = true
	w.statics = append(w.statics, b)
	return b
}

// AddDynamic creates a gravity-affected body centered on (x, y).
func (w *World) AddDynamic(x, y, width, height float64, group string) *Body {
	b := w.newBody(x, y, width, height, group)
	b.AllowGravity = true
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) newBody(x, y, width, height float64, group string) *Body {
	b := &Body{
		Group:   group,
		X:       x,
		Y:       y,
		W:       width,
		H:       height,
		enabled: true,
		visible: true,
		world:   w,
	}
	b.obj = resolv.NewObject(x-width/2, y-height/2, width, height, group)
	b.obj.Data = b
	w.space.Add(b.obj)
	return b
}

// Collide declares that bodies of the two groups block each other.
func (w *World) Collide(a, b string) {
	w.solids[a] = appendUnique(w.solids[a], b)
	w.solids[b] = appendUnique(w.solids[b], a)
}

// Overlap registers fn for every step in which a body of group a overlaps a
// body of group b. Overlaps never block motion.
func (w *World) Overlap(a, b string, fn OverlapFunc) {
	w.overlaps = append(w.overlaps, overlapRule{a: a, b: b, fn: fn})
}

// Pause freezes the world: Step becomes a no-op and no callbacks fire.
func (w *World) Pause() {
	w.paused = true
}

// Resume undoes Pause.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the world is frozen.
func (w *World) Paused() bool {
	return w.paused
}

// Statics returns all static bodies in creation order.
func (w *World) Statics() []*Body {
	return w.statics
}

// Step advances the world by dt seconds: integrate every enabled dynamic body,
// then dispatch overlap callbacks. Bodies created by callbacks join next step.
func (w *World) Step(dt float64) {
	if w.paused || dt <= 0 {
		return
	}

	bodies := w.bodies
	for _, b := range bodies {
		if !b.enabled {
			continue
		}
		w.integrate(b, dt)
	}

	w.dispatchOverlaps(bodies)
}

// integrate applies gravity and moves one body, X axis first.
func (w *World) integrate(b *Body, dt float64) {
	b.Touching = Touching{}
	b.Blocked = Touching{}

	if b.AllowGravity {
		b.VY += w.Gravity * dt
	}

	blockers := w.solids[b.Group]
	w.separate(b, blockers)

	if dx := b.VX * dt; dx != 0 {
		b.X += w.sweepX(b, dx, blockers)
		b.sync()
	}
	if dy := b.VY * dt; dy != 0 {
		b.Y += w.sweepY(b, dy, blockers)
		b.sync()
	}

	if b.CollideWorldBounds {
		w.clampToBounds(b)
		b.sync()
	}
}

// maxSeparations bounds how many stacked blockers separate climbs through.
const maxSeparations = 4

// separate moves a body that starts the step inside a blocker out of it. The
// sweeps only stop motion toward a face, so without this an embedded body
// would fall straight through. Bodies moving down or at rest are lifted onto
// the highest top face they overlap and count as landed; bodies moving up are
// dropped below the lowest bottom face.
func (w *World) separate(b *Body, groups []string) {
	if len(groups) == 0 {
		return
	}

	for range maxSeparations {
		r := b.Rect()
		lift, drop := 0.0, 0.0
		for _, o := range w.candidates(b, 0, 0, groups) {
			or := o.Rect()
			if math.Min(r.Right(), or.Right())-math.Max(r.Left(), or.Left()) <= epsilon ||
				math.Min(r.Bottom(), or.Bottom())-math.Max(r.Top(), or.Top()) <= epsilon {
				continue
			}
			lift = math.Max(lift, r.Bottom()-or.Top())
			drop = math.Max(drop, or.Bottom()-r.Top())
		}
		if lift == 0 {
			return
		}

		if b.VY >= 0 {
			b.Y -= lift
			b.Touching.Down, b.Blocked.Down = true, true
			if b.VY > 0 {
				b.VY = w.rebound(b.VY, b.BounceY, w.Gravity)
			}
		} else {
			b.Y += drop
			b.Touching.Up, b.Blocked.Up = true, true
			b.VY = w.rebound(b.VY, b.BounceY, 0)
		}
		b.sync()
	}
}

// sweepX clips a horizontal move against blockers and applies bounce.
func (w *World) sweepX(b *Body, dx float64, groups []string) float64 {
	r := b.Rect()
	hit := false

	for _, o := range w.candidates(b, dx, 0, groups) {
		or := o.Rect()
		if math.Min(r.Bottom(), or.Bottom())-math.Max(r.Top(), or.Top()) <= epsilon {
			continue // No vertical overlap, cannot block
		}
		if dx > 0 {
			gap := or.Left() - r.Right()
			if gap < -epsilon || gap >= dx {
				continue
			}
			dx = math.Max(gap, 0)
			hit = true
			b.Touching.Right, b.Blocked.Right = true, true
		} else {
			gap := or.Right() - r.Left()
			if gap > epsilon || gap <= dx {
				continue
			}
			dx = math.Min(gap, 0)
			hit = true
			b.Touching.Left, b.Blocked.Left = true, true
		}
	}

	if hit {
		b.VX = w.rebound(b.VX, b.BounceX, 0)
	}
	return dx
}

// sweepY clips a vertical move against blockers and applies bounce.
func (w *World) sweepY(b *Body, dy float64, groups []string) float64 {
	r := b.Rect()
	hit := false

	for _, o := range w.candidates(b, 0, dy, groups) {
		or := o.Rect()
		if math.Min(r.Right(), or.Right())-math.Max(r.Left(), or.Left()) <= epsilon {
			continue // No horizontal overlap, cannot block
		}
		if dy > 0 {
			gap := or.Top() - r.Bottom()
			if gap < -epsilon || gap >= dy {
				continue
			}
			dy = math.Max(gap, 0)
			hit = true
			b.Touching.Down, b.Blocked.Down = true, true
		} else {
			gap := or.Bottom() - r.Top()
			if gap > epsilon || gap <= dy {
				continue
			}
			dy = math.Min(gap, 0)
			hit = true
			b.Touching.Up, b.Blocked.Up = true, true
		}
	}

	if hit {
		b.VY = w.rebound(b.VY, b.BounceY, w.Gravity)
	}
	return dy
}

// clampToBounds keeps the body inside the world rectangle.
func (w *World) clampToBounds(b *Body) {
	halfW, halfH := b.W/2, b.H/2

	if b.X-halfW < 0 {
		b.X = halfW
		b.Blocked.Left = true
		if b.VX < 0 {
			b.VX = w.rebound(b.VX, b.BounceX, 0)
		}
	} else if b.X+halfW > w.Width {
		b.X = w.Width - halfW
		b.Blocked.Right = true
		if b.VX > 0 {
			b.VX = w.rebound(b.VX, b.BounceX, 0)
		}
	}

	if b.Y-halfH < 0 {
		b.Y = halfH
		b.Blocked.Up = true
		if b.VY < 0 {
			b.VY = w.rebound(b.VY, b.BounceY, 0)
		}
	} else if b.Y+halfH > w.Height {
		b.Y = w.Height - halfH
		b.Blocked.Down = true
		if b.VY > 0 {
			b.VY = w.rebound(b.VY, b.BounceY, w.Gravity)
		}
	}
}

// rebound reflects v scaled by bounce. Rebounds no faster than rest are
// zeroed so resting bodies settle instead of jittering.
func (w *World) rebound(v, bounce, rest float64) float64 {
	out := -v * bounce
	if rest > 0 && math.Abs(out) <= rest/30 {
		return 0
	}
	if out == 0 {
		return 0 // avoid -0
	}
	return out
}

// candidates returns enabled bodies of the given groups that share broad-phase
// cells with b moved by (dx, dy). The query reaches one unit further along the
// motion so bodies ending exactly on a cell boundary are still found.
func (w *World) candidates(b *Body, dx, dy float64, groups []string) []*Body {
	dx, dy = reach(dx), reach(dy)

	var out []*Body
	for _, g := range groups {
		c := b.obj.Check(dx, dy, g)
		if c == nil {
			continue
		}
		for _, obj := range c.Objects {
			o, ok := obj.Data.(*Body)
			if !ok || o == b || !o.enabled {
				continue
			}
			out = append(out, o)
		}
	}
	return out
}

// dispatchOverlaps fires overlap callbacks for every rule. Stops as soon as a
// callback pauses the world.
func (w *World) dispatchOverlaps(bodies []*Body) {
	for _, rule := range w.overlaps {
		for _, a := range bodies {
			if a.Group != rule.a || !a.enabled {
				continue
			}
			for _, o := range w.candidates(a, 0, 0, []string{rule.b}) {
				if !a.enabled || !o.enabled {
					continue
				}
				if !a.Rect().Intersects(o.Rect()) {
					continue
				}
				rule.fn(a, o)
				if w.paused {
					return
				}
			}
		}
	}
}

func reach(d float64) float64 {
	switch {
	case d > 0:
		return d + 1
	case d < 0:
		return d - 1
	default:
		return 0
	}
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
