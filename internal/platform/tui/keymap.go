package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// KeyMap defines the key bindings for a ski run. Player 2 steers the
// opponent on levels that have one.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Push       key.Binding
	P2Left     key.Binding
	P2Right    key.Binding
	P2Push     key.Binding
	Pause      key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Push, k.Pause, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Push},
		{k.P2Left, k.P2Right, k.P2Push},
		{k.Pause, k.Confirm, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Push: key.NewBinding(
			key.WithKeys("down", "s", " "),
			key.WithHelp("↓/space", "push"),
		),
		P2Left: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "p2 left"),
		),
		P2Right: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "p2 right"),
		),
		P2Push: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "p2 push"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Steer maps a key to a held steering action and the player it belongs to.
// It returns ActionNone for keys that do not steer.
func (k KeyMap) Steer(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	switch {
	case key.Matches(msg, k.Left):
		return core.Player1, core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.Player1, core.ActionRight
	case key.Matches(msg, k.Push):
		return core.Player1, core.ActionPush
	case key.Matches(msg, k.P2Left):
		return core.Player2, core.ActionLeft
	case key.Matches(msg, k.P2Right):
		return core.Player2, core.ActionRight
	case key.Matches(msg, k.P2Push):
		return core.Player2, core.ActionPush
	}
	return core.Player1, core.ActionNone
}

// Button maps a key to a discrete session button.
func (k KeyMap) Button(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
