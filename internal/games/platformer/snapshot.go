package platformer

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// BodySnapshot is the observable state of one body.
type BodySnapshot struct {
	ID      int     `msgpack:"id"`
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	VX      float64 `msgpack:"vx"`
	VY      float64 `msgpack:"vy"`
	Enabled bool    `msgpack:"on"`
}

// Snapshot captures a session for determinism checks and debugging.
type Snapshot struct {
	Tick     int            `msgpack:"tick"`
	Score    int            `msgpack:"score"`
	GameOver bool           `msgpack:"over"`
	HUD      string         `msgpack:"hud"`
	Motion   string         `msgpack:"motion"`
	Tint     uint32         `msgpack:"tint"`
	Player   BodySnapshot   `msgpack:"player"`
	Coins    []BodySnapshot `msgpack:"coins"`
	Enemies  []BodySnapshot `msgpack:"enemies"`
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	return TakeSnapshot(g.state)
}

// TakeSnapshot copies the observable parts of a session.
func TakeSnapshot(s *State) Snapshot {
	snap := Snapshot{
		Tick:     s.Tick,
		Score:    s.Score,
		GameOver: s.GameOver,
		HUD:      s.HUD,
		Motion:   s.Player.Motion.String(),
		Tint:     s.Player.Body.Tint,
		Player:   bodySnapshot(0, s.Player.Body.X, s.Player.Body.Y, s.Player.Body.VX, s.Player.Body.VY, true),
		Coins:    make([]BodySnapshot, 0, len(s.Coins)),
		Enemies:  make([]BodySnapshot, 0, len(s.Enemies)),
	}
	for _, c := range s.Coins {
		snap.Coins = append(snap.Coins, bodySnapshot(c.ID, c.Body.X, c.Body.Y, c.Body.VX, c.Body.VY, c.active))
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, bodySnapshot(e.ID, e.Body.X, e.Body.Y, e.Body.VX, e.Body.VY, e.Body.Enabled()))
	}
	return snap
}

func bodySnapshot(id int, x, y, vx, vy float64, enabled bool) BodySnapshot {
	return BodySnapshot{ID: id, X: x, Y: y, VX: vx, VY: vy, Enabled: enabled}
}

// Encode serializes the snapshot with msgpack.
func (snap *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(snap)
}

// DecodeSnapshot parses an encoded snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	err := msgpack.Unmarshal(data, &snap)
	return snap, err
}

// Hash returns an FNV-1a hash of the encoded snapshot.
func (snap *Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	//nolint:errcheck // hash.Hash never returns an error
	h.Write(data)
	return h.Sum64()
}

// EncodeState returns the msgpack snapshot of the running session. The
// terminal platform writes it next to screenshots.
func (g *Game) EncodeState() ([]byte, error) {
	snap := g.Snapshot()
	data, err := snap.Encode()
	if err != nil {
		return nil, fmt.Errorf("platformer: encode snapshot: %w", err)
	}
	return data, nil
}

// StateHash is the snapshot hash of the running session. Two sessions with
// the same seed and input end with the same hash.
func (g *Game) StateHash() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}
