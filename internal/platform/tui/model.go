package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/games/ski"
	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
	"github.com/vovakirdan/tui-ski/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a ski session.
type Model struct {
	session  *ski.Session
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	held     *Held
	loader   *tilemap.Loader
	watcher  *tilemap.Watcher
	config   core.RuntimeConfig
	last     time.Time // timestamp of the previous tick
	saved    bool      // the current finish has been stored
	quitting bool
}

// NewModel creates a model driving session. store may be nil to play
// without persistence.
func NewModel(session *ski.Session, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	m := Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		store:   store,
		logger:  log.New(io.Discard),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    NewHeld(DefaultHoldWindow),
		config:  cfg,
	}
	m.loadBest()
	return m
}

// loadBest shows the stored high score in the session HUD.
func (m Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(storage.GameID)
	if err != nil {
		m.logger.Warn("cannot read high score", "error", err)
		return
	}
	m.session.SetBest(best)
}

// WithLogger returns a copy of the model logging to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithReload returns a copy of the model that replaces levels edited on
// disk. Changed files are decoded with loader.
func (m Model) WithReload(loader *tilemap.Loader, watcher *tilemap.Watcher) Model {
	m.loader = loader
	m.watcher = watcher
	return m
}

// Init starts the tick loop and, when reloading, the level watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForLevel(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case LevelChangedMsg:
		m.reloadLevel(msg.Path)
		return m, waitForLevel(m.watcher)

	case LevelWatchErrMsg:
		m.logger.Warn("level watcher error", "error", msg.Err)
		return m, waitForLevel(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.held.Release()
		m.session.Restart()
		return m, nil
	}

	if button := m.keys.Button(msg); button != core.ActionNone {
		if m.session.Press(button) {
			m.held.Release()
		}
		return m, nil
	}

	if id, action := m.keys.Steer(msg); action != core.ActionNone {
		m.held.Press(id, action, now)
	}
	return m, nil
}

// handleTick advances the session by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	for _, ev := range m.session.Tick(dt, m.held.Frame(now)) {
		m.logger.Debug("event", "kind", ev.Kind, "player", ev.Player, "points", ev.Points, "penalty", ev.Penalty)
	}

	res, finished := m.session.Result()
	switch {
	case finished && !m.saved:
		m.saveRun(res)
		m.saved = true
	case !finished:
		m.saved = false
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveRun(res ski.RunResult) {
	m.logger.Info("level finished",
		"level", res.Level,
		"score", res.Score,
		"bonus", res.Bonus,
		"elapsed", fmt.Sprintf("%.2f", res.Elapsed),
		"finished", res.Finished,
	)
	if m.store == nil || !res.Finished {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Level:       res.Level,
		Score:       res.Score,
		Bonus:       res.Bonus,
		Elapsed:     res.Elapsed,
		TimeLimit:   res.TimeLimit,
		GatesPassed: res.GatesPassed,
		GatesMissed: res.GatesMissed,
		Crashes:     res.Crashes,
	})
	if err != nil {
		m.logger.Error("cannot save run", "error", err)
		return
	}
	m.loadBest()
}

func (m Model) reloadLevel(path string) {
	n, ok := tilemap.LevelNumber(path)
	if !ok || m.loader == nil {
		return
	}
	grid, _, err := m.loader.LoadFile(path)
	if err != nil {
		m.logger.Warn("cannot reload level", "path", path, "error", err)
		return
	}
	if err := m.session.ReplaceLevel(n, grid); err != nil {
		m.logger.Warn("level not replaced", "path", path, "error", err)
		return
	}
	if n == m.session.Level() && !m.session.Ready() {
		m.session.Restart()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ski", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("ski_level%d_%s.txt", m.session.Level(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	if h := core.Max(1, m.config.ScreenH-lipgloss.Height(helpView)); h != m.screen.Height() {
		m.screen.Resize(m.config.ScreenW, h)
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
