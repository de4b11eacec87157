package ski

import (
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
)

// steerThreshold is the lateral input needed to show a turning skier.
const steerThreshold = 0.1

// Move integrates a skier's position from lateral input and downhill speed.
type Move struct {
	Movement core.Vec2 // lateral input, consumed every update
	Push     bool      // consumed every update
	Speed    float64 // downhill speed in multiples of the movement speed
	Locked   bool
}

// Update ramps the downhill speed, moves the skier, and picks the matching
// animation. Crashed and locked skiers stand still.
func (m *Move) Update(w *World, e *ecs.Entity, dt float64) {
	render := ecs.MustGet[*Render](e)
	skier := ecs.MustGet[*Skier](e)
	if skier.Crashed || m.Locked {
		return
	}
	p := w.cfg.Player

	if m.Push {
		m.Speed = core.ClampF(m.Speed+p.PushAcceleration, m.Speed, p.DownhillSpeedMax)
	} else if m.Speed > p.DownhillSpeedMin {
		m.Speed = core.ClampF(m.Speed-p.ReleaseDeceleration, p.DownhillSpeedMin, m.Speed)
	}

	render.Pos.X += m.Movement.X * dt * p.MovementSpeed
	render.Pos.Y -= m.Speed * dt * p.MovementSpeed

	if anim, ok := ecs.Get[*Animation](e); ok {
		switch {
		case m.Movement.X < -steerThreshold:
			anim.Request(AnimLeft)
		case m.Movement.X > steerThreshold:
			anim.Request(AnimRight)
		default:
			anim.Request(AnimIdle)
		}
	}
	m.Movement = core.Vec2{}
	m.Push = false

	maxX := w.size.X - w.cfg.Map.TileWidth
	render.Pos.X = core.ClampF(render.Pos.X, 0, maxX)
}
