// Package tui runs the ski session inside Bubble Tea, locally or over SSH.
// It handles the terminal loop, held-key input, rendering, and persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LevelChangedMsg reports a level file edited on disk.
type LevelChangedMsg struct {
	Path string
}

// LevelWatchErrMsg carries a watcher failure.
type LevelWatchErrMsg struct {
	Err error
}

// waitForLevel blocks on the watcher until a level file changes.
// It returns nil once the watcher is closed.
func waitForLevel(w *tilemap.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return LevelWatchErrMsg{Err: err}
		}
	}
}
