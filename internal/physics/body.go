package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/coin-rush/internal/core"
)

// Touching records which sides of a body met something during the last step.
type Touching struct {
	Up, Down, Left, Right bool
}

// Body is an axis-aligned box in the world. X and Y are the center.
type Body struct {
	Group string
	X, Y  float64
	W, H  float64

	VX, VY           float64
	BounceX, BounceY float64 // Fraction of speed kept when blocked (1 = elastic)

	CollideWorldBounds bool
	AllowGravity       bool
	Static             bool

	Tint uint32 // 24-bit RGB, 0 = untinted

	// Touching is set by solid bodies only; Blocked also includes world bounds.
	Touching Touching
	Blocked  Touching

	// Data links the body back to the owning game entity.
	Data any

	enabled bool
	visible bool
	obj     *resolv.Object
	world   *World
}

// Rect returns the body's current bounds.
func (b *Body) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// SetBounce sets the restitution on both axes.
func (b *Body) SetBounce(x, y float64) {
	b.BounceX = x
	b.BounceY = y
}

// OnGround reports whether the body rested on a solid body during the last step.
func (b *Body) OnGround() bool {
	return b.Touching.Down
}

// Enabled reports whether the body is still simulated.
func (b *Body) Enabled() bool {
	return b.enabled
}

// Visible reports whether the body should be drawn.
func (b *Body) Visible() bool {
	return b.visible
}

// Disable removes the body from simulation and hides it.
// The body keeps its last position and may be inspected afterwards.
func (b *Body) Disable() {
	if !b.enabled {
		return
	}
	b.enabled = false
	b.visible = false
	b.VX, b.VY = 0, 0
	if b.world != nil && b.obj != nil {
		b.world.space.Remove(b.obj)
	}
}

// sync copies the body position into its broad-phase object.
func (b *Body) sync() {
	if b.obj == nil {
		return
	}
	b.obj.X = b.X - b.W/2
	b.obj.Y = b.Y - b.H/2
	b.obj.Update()
}
