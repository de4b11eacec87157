package tui

import (
	"time"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// DefaultHoldWindow is how long a key press keeps its action held.
// Terminals report presses and auto-repeats but never releases, so a held
// key is one that was seen within the window.
const DefaultHoldWindow = 250 * time.Millisecond

// Held turns key presses into continuous per-player input.
type Held struct {
	window time.Duration
	until  map[core.PlayerID]map[core.Action]time.Time
}

// NewHeld creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHeld(window time.Duration) *Held {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &Held{
		window: window,
		until:  make(map[core.PlayerID]map[core.Action]time.Time),
	}
}

// Press records a press at now. Pressing one direction releases the other.
func (h *Held) Press(id core.PlayerID, a core.Action, now time.Time) {
	keys, ok := h.until[id]
	if !ok {
		keys = make(map[core.Action]time.Time)
		h.until[id] = keys
	}
	switch a {
	case core.ActionLeft:
		delete(keys, core.ActionRight)
	case core.ActionRight:
		delete(keys, core.ActionLeft)
	}
	keys[a] = now.Add(h.window)
}

// Release drops every held action.
func (h *Held) Release() {
	clear(h.until)
}

// Frame returns the input held at now.
func (h *Held) Frame(now time.Time) core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for id, keys := range h.until {
		held := func(a core.Action) bool {
			t, ok := keys[a]
			return ok && now.Before(t)
		}
		frame.SetPlayer(id, core.Steering(held(core.ActionLeft), held(core.ActionRight), held(core.ActionPush)))
	}
	return frame
}
