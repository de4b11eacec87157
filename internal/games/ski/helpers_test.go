package ski

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
)

const tick = 1.0 / 60

func testConfig() config.SkiConfig {
	cfg := config.DefaultSkiConfig()
	cfg.Map.Rows = 16
	return cfg
}

// at places tiles starting at a column.
func at(col int, tiles string) string {
	return strings.Repeat(" ", col) + tiles
}

// course is a start, one gate three rows down, and the finish.
func course() []string {
	return []string{
		at(8, "I"),
		"",
		"",
		at(7, "q.p"),
		"",
		"",
		"",
		"",
		at(8, "F"),
	}
}

func decode(t *testing.T, cfg config.SkiConfig, rows []string) *tilemap.Grid {
	t.Helper()
	g, report := tilemap.Decode(strings.Join(rows, "\n"), LevelLayout(cfg.Map))
	if !report.Clean() {
		t.Fatalf("test level does not decode cleanly: %+v", report)
	}
	return g
}

func newTestSession(t *testing.T, cfg config.SkiConfig, levels ...[]string) *Session {
	t.Helper()
	var grids []*tilemap.Grid
	for _, rows := range levels {
		grids = append(grids, decode(t, cfg, rows))
	}
	s, err := NewSession(Options{Config: cfg, Grids: grids})
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return s
}

func newTestWorld(t *testing.T, cfg config.SkiConfig, rows ...string) *World {
	t.Helper()
	return newWorld(cfg, decode(t, cfg, rows), cfg.Gate.MissedGateTimePenalty, log.New(io.Discard))
}

func noInput() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func untilPhase(t *testing.T, s *Session, phase ScenePhase, limit int) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < limit; i++ {
		if s.Phase() == phase {
			return events
		}
		events = append(events, s.Tick(tick, noInput())...)
	}
	if s.Phase() != phase {
		t.Fatalf("phase = %v after %d ticks, expected %v", s.Phase(), limit, phase)
	}
	return events
}

func player(t *testing.T, w *World, id core.PlayerID) (*ecs.Entity, *Skier, *Render) {
	t.Helper()
	e, ok := w.Player(id)
	if !ok {
		t.Fatalf("player %d not spawned", id)
	}
	return e, ecs.MustGet[*Skier](e), ecs.MustGet[*Render](e)
}

func playerState(e *ecs.Entity) PlayerState {
	return ecs.MustGet[*State](e).Player.Current()
}

func firstGate(t *testing.T, w *World) *ecs.Entity {
	t.Helper()
	for _, e := range w.Entities() {
		if ecs.Has[*Gate](e) {
			return e
		}
	}
	t.Fatal("no gate in world")
	return nil
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
