package platformer

import (
	"github.com/vovakirdan/coin-rush/internal/core"
	"github.com/vovakirdan/coin-rush/internal/physics"
	"github.com/vovakirdan/coin-rush/internal/sprite"
)

// Animation keys.
const (
	AnimLeft  = "left"
	AnimIdle  = "idle"
	AnimRight = "right"
	AnimCoin  = "coin"
)

// NewAnimations registers the player and coin animations.
// Player frames index the 9-frame runner sheet, coin frames the 8-frame spin.
func NewAnimations() *sprite.Library {
	lib := sprite.NewLibrary()
	lib.Add(sprite.Animation{Key: AnimLeft, Frames: sprite.Range(0, 3), FrameRate: 10, Repeat: true})
	lib.Add(sprite.Animation{Key: AnimIdle, Frames: []int{4}, FrameRate: 20})
	lib.Add(sprite.Animation{Key: AnimRight, Frames: sprite.Range(5, 8), FrameRate: 10, Repeat: true})
	lib.Add(sprite.Animation{Key: AnimCoin, Frames: sprite.Range(0, 7), FrameRate: 10, Repeat: true})
	return lib
}

func newAnim(lib *sprite.Library, key string) *sprite.Player {
	p := sprite.NewPlayer(lib)
	p.Play(key, false)
	return p
}

// Motion is the player's horizontal motion state.
type Motion int

const (
	MotionIdle Motion = iota
	MotionLeft
	MotionRight
)

func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "moving-left"
	case MotionRight:
		return "moving-right"
	default:
		return "idle"
	}
}

// Player is the single controllable body of a session.
type Player struct {
	Body   *physics.Body
	Anim   *sprite.Player
	Motion Motion
}

// NewPlayer places the player at its start position, clamped to the world.
func NewPlayer(s *State) *Player {
	pc := s.Cfg.Player
	p := &Player{Anim: newAnim(s.Anims, AnimIdle)}

	p.Body = s.World.AddDynamic(pc.StartX, pc.StartY, pc.Width, pc.Height, GroupPlayer)
	p.Body.Data = p
	p.Body.SetBounce(pc.Bounce, pc.Bounce)
	p.Body.CollideWorldBounds = true

	return p
}

// ControlPlayer applies one frame of input. Horizontal velocity is rebuilt
// from scratch every frame; a jump needs up held while standing on something.
func ControlPlayer(s *State, in core.InputFrame) {
	if s.GameOver {
		return
	}

	p := s.Player
	pc := s.Cfg.Player
	left, right, up, _ := in.Directions()

	switch {
	case left:
		p.Body.VX = -pc.RunSpeed
		p.Anim.Play(AnimLeft, true)
		p.Motion = MotionLeft
	case right:
		p.Body.VX = pc.RunSpeed
		p.Anim.Play(AnimRight, true)
		p.Motion = MotionRight
	default:
		p.Body.VX = 0
		p.Anim.Play(AnimIdle, false)
		p.Motion = MotionIdle
	}

	if up && p.Body.OnGround() {
		p.Body.VY = pc.JumpImpulse
	}
}
