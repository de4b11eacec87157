package ski

import (
	"testing"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
	"github.com/vovakirdan/tui-ski/internal/physics"
)

// gateBodies returns the bodies of a gate by name and side.
func gateBodies(gate *ecs.Entity) (body, leftPost, rightPost, missed *physics.Body) {
	for _, b := range ecs.MustGet[*Physics](gate).Bodies {
		switch {
		case b.Name == NameGate:
			body = b
		case b.Name == NamePost && b.Part == PostLeft:
			leftPost = b
		case b.Name == NamePost && b.Part == PostRight:
			rightPost = b
		case b.Name == NameMissed && missed == nil:
			missed = b
		}
	}
	return body, leftPost, rightPost, missed
}

func playerBody(e *ecs.Entity) *physics.Body {
	return ecs.MustGet[*Physics](e).Bodies[0]
}

func begin(a, b *physics.Body) physics.Event {
	return physics.Event{Phase: physics.Begin, A: a, B: b}
}

func end(a, b *physics.Body) physics.Event {
	return physics.Event{Phase: physics.End, A: a, B: b}
}

func TestCleanGatePass(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(t, cfg, course()...)
	p, skier, _ := player(t, w, core.Player1)
	gate := firstGate(t, w)
	body, _, _, _ := gateBodies(gate)

	w.resolve([]physics.Event{begin(body, playerBody(p))})
	if !ecs.MustGet[*State](gate).Gate.Is(GatePassed) {
		t.Fatalf("gate state = %v after begin, expected passed", ecs.MustGet[*State](gate).Gate.Current())
	}
	w.resolve([]physics.Event{end(playerBody(p), body)})

	expected := cfg.Gate.Score * cfg.Gate.MinScoringMultiplier
	if skier.Score != expected {
		t.Errorf("Score = %d, expected %d", skier.Score, expected)
	}
	if skier.Multiplier != cfg.Gate.MinScoringMultiplier+1 {
		t.Errorf("Multiplier = %d, expected %d", skier.Multiplier, cfg.Gate.MinScoringMultiplier+1)
	}
	if got := ecs.MustGet[*Gate](gate).Awarded; got != expected {
		t.Errorf("Awarded = %d, expected %d", got, expected)
	}
	if countKind(w.events, EventGatePassed) != 1 {
		t.Errorf("events = %v, expected one gate-passed", w.events)
	}
}

func TestMissedGatePenalty(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(t, cfg, course()...)
	p, skier, _ := player(t, w, core.Player1)
	gate := firstGate(t, w)
	body, _, _, missed := gateBodies(gate)
	skier.Multiplier = 6
	skier.Score = 300
	skier.Elapsed = 10

	w.resolve([]physics.Event{
		begin(body, playerBody(p)),
		begin(missed, playerBody(p)),
		end(missed, playerBody(p)),
		end(body, playerBody(p)),
	})

	if !ecs.MustGet[*State](gate).Gate.Is(GateRunOutside) {
		t.Errorf("gate state = %v, expected run-outside", ecs.MustGet[*State](gate).Gate.Current())
	}
	if !near(skier.Elapsed, 10+cfg.Gate.MissedGateTimePenalty) {
		t.Errorf("Elapsed = %v, expected %v", skier.Elapsed, 10+cfg.Gate.MissedGateTimePenalty)
	}
	if skier.Score != 300 {
		t.Errorf("Score = %d, expected unchanged 300", skier.Score)
	}
	if skier.Multiplier != cfg.Gate.MinScoringMultiplier {
		t.Errorf("Multiplier = %d, expected reset to %d", skier.Multiplier, cfg.Gate.MinScoringMultiplier)
	}
	if skier.GatesMissed != 1 {
		t.Errorf("GatesMissed = %d, expected 1", skier.GatesMissed)
	}
}

func TestPostHitFailsGate(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(t, cfg, course()...)
	p, skier, _ := player(t, w, core.Player1)
	gate := firstGate(t, w)
	body, _, rightPost, _ := gateBodies(gate)
	skier.Multiplier = 7

	w.resolve([]physics.Event{
		begin(body, playerBody(p)),
		begin(rightPost, playerBody(p)),
	})
	machine := ecs.MustGet[*State](gate).Gate
	if !machine.Is(GateRunOverPost) {
		t.Fatalf("gate state = %v, expected run-over-post", machine.Current())
	}
	if skier.Multiplier != cfg.Gate.MinScoringMultiplier {
		t.Errorf("Multiplier = %d, expected reset", skier.Multiplier)
	}
	if g := ecs.MustGet[*Gate](gate); !g.Crooked[PostRight] || g.Crooked[PostLeft] {
		t.Errorf("Crooked = %v, expected only the right post", g.Crooked)
	}

	// A failed gate cannot be passed again in the same encounter.
	w.resolve([]physics.Event{begin(body, playerBody(p))})
	if !machine.Is(GateRunOverPost) {
		t.Errorf("gate state = %v after a second begin, expected run-over-post", machine.Current())
	}
	w.resolve([]physics.Event{end(body, playerBody(p))})
	if skier.Score != 0 || skier.GatesMissed != 1 {
		t.Errorf("Score = %d, GatesMissed = %d after a post hit", skier.Score, skier.GatesMissed)
	}
}

func TestMultiplierCap(t *testing.T) {
	cfg := testConfig()
	top := cfg.Gate.MaxScoringMultiplier

	tests := []struct {
		start    int
		expected int
	}{
		{top - 1, top},
		{top, top + 1},
		{top + 1, top + 1},
	}

	for _, tt := range tests {
		w := newTestWorld(t, cfg, course()...)
		p, skier, _ := player(t, w, core.Player1)
		body, _, _, _ := gateBodies(firstGate(t, w))
		skier.Multiplier = tt.start

		w.resolve([]physics.Event{begin(body, playerBody(p)), end(body, playerBody(p))})

		if skier.Multiplier != tt.expected {
			t.Errorf("Multiplier from %d = %d, expected %d", tt.start, skier.Multiplier, tt.expected)
		}
		if skier.Score != cfg.Gate.Score*tt.start {
			t.Errorf("Score = %d, expected %d", skier.Score, cfg.Gate.Score*tt.start)
		}
	}
}

func TestObstacleContact(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(t, cfg, at(8, "I"), at(8, "G"))
	p, skier, _ := player(t, w, core.Player1)
	skier.Multiplier = 6

	var tree *ecs.Entity
	for _, e := range w.Entities() {
		if ecs.Has[*Obstacle](e) {
			tree = e
		}
	}
	treeBody := ecs.MustGet[*Physics](tree).Bodies[0]

	w.resolve([]physics.Event{begin(treeBody, playerBody(p))})
	if !skier.Crashed || skier.Crashes != 1 {
		t.Errorf("Crashed = %v, Crashes = %d, expected a crash", skier.Crashed, skier.Crashes)
	}
	if skier.Multiplier != cfg.Gate.MinScoringMultiplier {
		t.Errorf("Multiplier = %d, expected reset", skier.Multiplier)
	}

	w.resolve([]physics.Event{end(treeBody, playerBody(p))})
	if !w.manager.Pending(tree.ID()) {
		t.Fatal("obstacle should be marked for removal on contact end")
	}
	before := w.space.Len()
	w.manager.Flush()
	if _, ok := w.manager.Entity(tree.ID()); ok {
		t.Error("obstacle still live after Flush")
	}
	if w.space.Len() != before-1 || treeBody.Attached() {
		t.Error("obstacle body should leave the physics space")
	}
}

func TestFinishContact(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(t, cfg, course()...)
	p, skier, _ := player(t, w, core.Player1)

	var finish *ecs.Entity
	for _, e := range w.Entities() {
		if ecs.Has[*FinishLine](e) {
			finish = e
		}
	}
	finishBody := ecs.MustGet[*Physics](finish).Bodies[0]

	w.resolve([]physics.Event{begin(finishBody, playerBody(p))})
	if !skier.ReachedFinish || !w.finishReached {
		t.Errorf("ReachedFinish = %v, finishReached = %v, expected both set", skier.ReachedFinish, w.finishReached)
	}
}
