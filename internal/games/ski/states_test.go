package ski

import (
	"testing"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
)

// runWorld drives the world systems the way a session tick does.
func runWorld(w *World, seconds float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += tick {
		w.manager.Update(w, tick)
		w.manager.Flush()
		for _, e := range w.Entities() {
			ecs.MustGet[*Render](e).Advance(tick)
		}
	}
}

func TestPlayerAppearsLocked(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(t, cfg, at(8, "I"))
	e, _, render := player(t, w, core.Player1)
	move := ecs.MustGet[*Move](e)
	start := render.Pos

	if playerState(e) != PlayerAppear {
		t.Fatalf("initial state = %v, expected appear", playerState(e))
	}
	move.Push = true
	runWorld(w, cfg.Player.AppearDuration-0.5)
	if render.Pos != start || move.Speed != 0 {
		t.Errorf("appearing skier moved: pos %v speed %v", render.Pos, move.Speed)
	}

	runWorld(w, 1)
	if playerState(e) != PlayerInputControlled {
		t.Fatalf("state = %v after appear duration, expected input-controlled", playerState(e))
	}
	if move.Locked {
		t.Error("Locked = true after appear")
	}
}

func TestPlayerCrashRoundTrip(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(t, cfg, at(8, "I"))
	e, skier, render := player(t, w, core.Player1)
	runWorld(w, cfg.Player.AppearDuration+tick)

	before := render.Pos.Y
	skier.Crashed = true
	runWorld(w, tick)
	if playerState(e) != PlayerCrashed {
		t.Fatalf("state = %v, expected crashed", playerState(e))
	}

	runWorld(w, cfg.Player.CrashSlideDuration+0.1)
	if !near(render.Pos.Y, before-cfg.Player.CrashSlideDistance) {
		t.Errorf("Y during crash = %v, expected slide to %v", render.Pos.Y, before-cfg.Player.CrashSlideDistance)
	}
	if anim := ecs.MustGet[*Animation](e); anim.Current() != AnimCrash {
		t.Errorf("animation = %v, expected crash", anim.Current())
	}

	for i := 0; i < 600 && playerState(e) == PlayerCrashed; i++ {
		runWorld(w, tick)
	}
	if playerState(e) != PlayerInputControlled {
		t.Fatalf("state = %v after crash duration, expected input-controlled", playerState(e))
	}
	if skier.Crashed {
		t.Error("Crashed flag still set after recovery")
	}
	if !near(render.Pos.Y, before) {
		t.Errorf("Y after crash = %v, expected %v", render.Pos.Y, before)
	}
}

func TestPlayerReachedFinishSteersToCenter(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"left of band", 40, cfg.Player.FinishSteering},
		{"right of band", 200, -cfg.Player.FinishSteering},
		{"inside band", 128, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, cfg, at(8, "I"))
			e, skier, render := player(t, w, core.Player1)
			runWorld(w, cfg.Player.AppearDuration+tick)

			skier.ReachedFinish = true
			runWorld(w, tick)
			if playerState(e) != PlayerReachedFinish {
				t.Fatalf("state = %v, expected reached-finish", playerState(e))
			}

			render.Pos.X = tt.x
			runWorld(w, tick)
			if got := ecs.MustGet[*Move](e).Movement.X; !near(got, tt.expected) {
				t.Errorf("steering = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestPlayerStopsAfterFinish(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(t, cfg, at(8, "I"))
	e, skier, _ := player(t, w, core.Player1)
	move := ecs.MustGet[*Move](e)
	runWorld(w, cfg.Player.AppearDuration+tick)

	skier.ReachedFinish = true
	runWorld(w, tick)
	if move.Speed != cfg.Player.DownhillSpeedMin {
		t.Errorf("Speed at finish = %v, expected %v", move.Speed, cfg.Player.DownhillSpeedMin)
	}

	runWorld(w, cfg.Player.ReachedFinishLineStateDuration+0.1)
	if move.Speed != 0 {
		t.Errorf("Speed = %v after finish duration, expected 0", move.Speed)
	}

	skier.Crashed = true
	runWorld(w, tick)
	if playerState(e) != PlayerReachedFinish {
		t.Errorf("reached-finish is terminal, state became %v", playerState(e))
	}
}

func TestGateTransitions(t *testing.T) {
	tests := []struct {
		from     GateState
		to       GateState
		expected bool
	}{
		{GateIdle, GatePassed, true},
		{GateIdle, GateRunOutside, true},
		{GatePassed, GateRunOverPost, true},
		{GatePassed, GateIdle, true},
		{GateRunOverPost, GateRunOutside, true},
		{GateRunOverPost, GatePassed, false},
		{GateRunOverPost, GateIdle, false},
		{GateRunOutside, GateRunOverPost, true},
		{GateRunOutside, GatePassed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			m := NewGateMachine()
			_ = m.Start(Actor{}, tt.from)
			if got := m.Enter(Actor{}, tt.to); got != tt.expected {
				t.Errorf("Enter(%v) from %v = %v, expected %v", tt.to, tt.from, got, tt.expected)
			}
		})
	}
}
