// Package sprite provides named frame animations and per-body animation players.
// Frames are indices into a sprite sheet; renderers map them to glyphs.
package sprite

import "sync"

// Animation is a named, ordered list of sheet frames played at a fixed rate.
type Animation struct {
	Key       string
	Frames    []int
	FrameRate float64 // Frames per second
	Repeat    bool    // Loop forever instead of holding the last frame
}

// Range returns the inclusive frame range [start, end].
func Range(start, end int) []int {
	if end < start {
		return nil
	}
	frames := make([]int, 0, end-start+1)
	for f := start; f <= end; f++ {
		frames = append(frames, f)
	}
	return frames
}

// Library holds registered animations by key.
type Library struct {
	mu    sync.RWMutex
	anims map[string]Animation
}

// NewLibrary creates an empty animation library.
func NewLibrary() *Library {
	return &Library{anims: make(map[string]Animation)}
}

// Add registers an animation, replacing any previous one with the same key.
func (l *Library) Add(a Animation) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.anims[a.Key] = a
}

// Get looks up an animation by key.
func (l *Library) Get(key string) (Animation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.anims[key]
	return a, ok
}

// Player plays animations from a library for a single body.
type Player struct {
	lib      *Library
	anim     Animation
	index    int
	elapsed  float64
	playing  bool
	finished bool
}

// NewPlayer creates a player bound to a library. Nothing plays until Play.
func NewPlayer(lib *Library) *Player {
	return &Player{lib: lib}
}

// Play starts the named animation from its first frame.
// With ignoreIfPlaying set, asking for the animation that is already
// running leaves it untouched. Unknown keys are ignored.
func (p *Player) Play(key string, ignoreIfPlaying bool) {
	if ignoreIfPlaying && p.playing && p.anim.Key == key {
		return
	}
	a, ok := p.lib.Get(key)
	if !ok || len(a.Frames) == 0 {
		return
	}
	p.anim = a
	p.index = 0
	p.elapsed = 0
	p.playing = true
	p.finished = false
}

// Update advances the animation clock by dt seconds.
func (p *Player) Update(dt float64) {
	if !p.playing || p.finished || p.anim.FrameRate <= 0 {
		return
	}

	p.elapsed += dt
	step := 1.0 / p.anim.FrameRate
	for p.elapsed >= step {
		p.elapsed -= step
		if p.index+1 < len(p.anim.Frames) {
			p.index++
			continue
		}
		if !p.anim.Repeat {
			p.finished = true
			p.elapsed = 0
			return
		}
		p.index = 0
	}
}

// Key returns the current animation key, or "" if nothing has played.
func (p *Player) Key() string {
	if !p.playing {
		return ""
	}
	return p.anim.Key
}

// Frame returns the current sheet frame, or -1 if nothing has played.
func (p *Player) Frame() int {
	if !p.playing {
		return -1
	}
	return p.anim.Frames[p.index]
}
