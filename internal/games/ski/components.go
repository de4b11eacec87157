// Package ski implements the downhill skiing simulation: entities built from
// level tiles, their components and state machines, contact scoring, and the
// session that drives one tick at a time.
package ski

import (
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
	"github.com/vovakirdan/tui-ski/internal/fsm"
	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
	"github.com/vovakirdan/tui-ski/internal/physics"
)

// Render holds an entity's world position and how it is drawn.
// It is also the anchor that moves the entity's physics bodies.
type Render struct {
	Pos   core.Vec2
	Glyph rune
	Color core.Color

	slide *slide
}

// slide moves Pos.Y by dy over duration seconds.
type slide struct {
	dy       float64
	duration float64
	elapsed  float64
	applied  float64
}

// Position returns the current world position.
func (r *Render) Position() core.Vec2 {
	return r.Pos
}

// SlideBy starts moving the entity vertically by dy over duration seconds.
// A slide already running is completed first.
func (r *Render) SlideBy(dy, duration float64) {
	r.FinishSlide()
	r.slide = &slide{dy: dy, duration: duration}
	if duration <= 0 {
		r.FinishSlide()
	}
}

// Sliding reports whether a slide is in progress.
func (r *Render) Sliding() bool {
	return r.slide != nil
}

// Advance moves a running slide forward by dt.
func (r *Render) Advance(dt float64) {
	if r.slide == nil {
		return
	}
	r.slide.elapsed += dt
	if r.slide.elapsed >= r.slide.duration {
		r.FinishSlide()
		return
	}
	target := r.slide.dy * r.slide.elapsed / r.slide.duration
	r.Pos.Y += target - r.slide.applied
	r.slide.applied = target
}

// FinishSlide jumps a running slide to its end.
func (r *Render) FinishSlide() {
	if r.slide == nil {
		return
	}
	r.Pos.Y += r.slide.dy - r.slide.applied
	r.slide = nil
}

// Physics holds the collision bodies of an entity.
type Physics struct {
	Bodies []*physics.Body
}

// Skier is the score state of one player.
type Skier struct {
	ID            core.PlayerID
	Score         int
	Elapsed       float64
	Multiplier    int
	Crashed       bool
	ReachedFinish bool

	GatesPassed int
	GatesMissed int
	Crashes     int
}

// Gate holds the presentation state of a gate.
type Gate struct {
	Crooked [2]bool // left and right post were hit
	Awarded int     // points shown at the gate after a clean pass
}

// Post sides, used as physics.Body.Part.
const (
	PostLeft  = 0
	PostRight = 1
)

// Obstacle marks a tree or a rock.
type Obstacle struct {
	Kind tilemap.TileType
}

// FinishLine marks the finish entity.
type FinishLine struct{}

// State drives an entity's state machine once per tick.
// An entity runs either the player machine or the gate machine.
type State struct {
	Player *fsm.Machine[PlayerState, Actor]
	Gate   *fsm.Machine[GateState, Actor]
}

// Actor is the context handed to entity state machines.
type Actor struct {
	World  *World
	Entity *ecs.Entity
}

// Update ticks whichever machine the entity has.
func (s *State) Update(w *World, e *ecs.Entity, dt float64) {
	ctx := Actor{World: w, Entity: e}
	if s.Player != nil {
		s.Player.Update(ctx, dt)
	}
	if s.Gate != nil {
		s.Gate.Update(ctx, dt)
	}
}
