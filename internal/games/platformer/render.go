package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/coin-rush/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▒'
	PlayerChar   = '█'
	EnemyChar    = '*'
)

// coinGlyphs follows the 8-frame coin spin.
var coinGlyphs = []rune{'o', 'O', '0', 'O', 'o', 'O', '0', 'O'}

// playerFace maps the runner sheet frame to the glyph drawn on the head row.
func playerFace(frame int) rune {
	switch {
	case frame >= 0 && frame <= 3:
		return '<'
	case frame >= 5 && frame <= 8:
		return '>'
	default:
		return '@'
	}
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

// cells returns the screen rectangle covered by r, at least one cell in size.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.Left() * v.sx))
	y0 := int(math.Floor(r.Top() * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	s := g.state
	v := newViewport(dst, s.Cfg.World.Width, s.Cfg.World.Height)

	for _, r := range s.Level.Bounds() {
		dst.FillRect(v.cells(r), PlatformChar, core.ColorGreen)
	}

	for _, c := range s.Coins {
		if !c.Body.Visible() {
			continue
		}
		glyph := coinGlyphs[0]
		if f := c.Anim.Frame(); f >= 0 && f < len(coinGlyphs) {
			glyph = coinGlyphs[f]
		}
		r := v.cells(c.Body.Rect())
		dst.SetColored(r.X, r.Y, glyph, core.ColorBrightYellow)
	}

	for _, e := range s.Enemies {
		dst.FillRect(v.cells(e.Body.Rect()), EnemyChar, core.ColorMagenta)
	}

	g.drawPlayer(dst, v)

	dst.DrawTextColored(2, 0, " "+s.HUD+" ", core.ColorWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

// drawPlayer renders the runner, red once defeated.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.state.Player
	color := core.ColorCyan
	if p.Body.Tint != 0 {
		color = core.ColorFromRGB(p.Body.Tint)
	}

	r := v.cells(p.Body.Rect())
	dst.FillRect(r, PlayerChar, color)
	dst.SetColored(r.X+r.W/2, r.Y, playerFace(p.Anim.Frame()), color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
