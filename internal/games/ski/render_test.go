package ski

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
)

func TestRenderCountdown(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg, course())
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "SCORE 000000") || !strings.Contains(row, "LEVEL 1") {
		t.Errorf("HUD row = %q", row)
	}
	if !strings.Contains(screen.String(), "PLAYER GET READY!") {
		t.Error("countdown overlay missing")
	}

	// The slope is 64 cells wide and centered; the camera keeps the skier
	// five rows below the HUD.
	if got := screen.Get(40, 6); got != '|' {
		t.Errorf("skier cell = %q, expected '|'", got)
	}
	if cell := screen.GetCell(40, 6); cell.Color != core.ColorSkier {
		t.Errorf("skier color = %v, expected %v", cell.Color, core.ColorSkier)
	}
	if screen.Get(36, 18) != GlyphPost || screen.Get(44, 18) != GlyphPost {
		t.Errorf("gate row = %q, expected posts at columns 36 and 44", screen.Row(18))
	}
	if screen.Get(7, 10) != EdgeChar || screen.Get(72, 10) != EdgeChar {
		t.Errorf("slope edges missing in row %q", screen.Row(10))
	}
}

func TestRenderBentPostAndAward(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg, course())
	gate := ecs.MustGet[*Gate](firstGate(t, s.World()))
	gate.Crooked[PostLeft] = true
	gate.Awarded = 400
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	if screen.Get(36, 18) != GlyphBent {
		t.Errorf("left post = %q, expected %q", screen.Get(36, 18), GlyphBent)
	}
	if !strings.Contains(screen.Row(18), "+400") {
		t.Errorf("gate row = %q, expected the awarded points", screen.Row(18))
	}
}

func TestRenderFinishSummary(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg, course())
	untilPhase(t, s, SceneFinish, raceTicks)
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	out := screen.String()
	for _, want := range []string{"LEVEL 1 COMPLETE", "Bonus Points 1000 X", "SCORE "} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q", want)
		}
	}
}
