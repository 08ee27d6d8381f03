// Package core holds the types shared by games and the terminal platform:
// runtime config, input frames, the cell screen and the two rectangle
// flavours. It imports nothing outside the standard library so game logic
// stays testable without a terminal.
package core

// Rect is a box of screen cells anchored at its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the w×h cell box whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the box covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// RectF is a box in world units anchored at its center, the way physics
// bodies are positioned.
type RectF struct {
	CX, CY float64
	W, H   float64
}

// NewRectF returns the w×h box centered on (cx, cy).
func NewRectF(cx, cy, w, h float64) RectF {
	return RectF{CX: cx, CY: cy, W: w, H: h}
}

func (r RectF) Left() float64 { return r.CX - r.W/2 }
func (r RectF) Right() float64 { return r.CX + r.W/2 }
func (r RectF) Top() float64 { return r.CY - r.H/2 }
func (r RectF) Bottom() float64 { return r.CY + r.H/2 }

// Union returns the smallest box holding both r and o.
func (r RectF) Union(o RectF) RectF {
	l, t := min(r.Left(), o.Left()), min(r.Top(), o.Top())
	rt, b := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return RectF{CX: (l + rt) / 2, CY: (t + b) / 2, W: rt - l, H: b - t}
}

// Intersects reports whether the boxes share interior area. Boxes that
// only touch along an edge do not intersect.
func (r RectF) Intersects(o RectF) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}
