package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coin-rush/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Down    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Down},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", "k", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// isDirection reports whether an action is sampled as "held".
func isDirection(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

// HoldTracker turns key presses into held directions. Terminals report
// presses and auto-repeats but never releases, so a direction counts as
// held until holdTicks ticks pass without another press of it.
type HoldTracker struct {
	holdTicks int
	tick      int
	until     map[core.Action]int
}

// NewHoldTracker creates a tracker. holdTicks below 1 is treated as 1.
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{
		holdTicks: max(holdTicks, 1),
		until:     make(map[core.Action]int),
	}
}

// DefaultHoldTicks bridges the usual terminal auto-repeat delay.
func DefaultHoldTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(tickRate*3/10, 1)
}

// Press marks a direction as held from the current tick on. Pressing a
// horizontal direction releases the opposite one immediately.
func (h *HoldTracker) Press(a core.Action) {
	if !isDirection(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = h.tick + h.holdTicks
}

// Held reports whether a direction is held at the current tick.
func (h *HoldTracker) Held(a core.Action) bool {
	until, ok := h.until[a]
	return ok && h.tick < until
}

// Apply sets every held direction on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if h.Held(a) {
			frame.Set(a)
		}
	}
}

// Advance moves to the next tick and forgets expired holds.
func (h *HoldTracker) Advance() {
	h.tick++
	for a, until := range h.until {
		if h.tick >= until {
			delete(h.until, a)
		}
	}
}

// Release drops every held direction.
func (h *HoldTracker) Release() {
	for a := range h.until {
		delete(h.until, a)
	}
}
