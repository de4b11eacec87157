package ski

import (
	"github.com/vovakirdan/tui-ski/internal/ecs"
)

// AnimState tags an animation sequence.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimLeft
	AnimRight
	AnimCrash
)

func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimLeft:
		return "left"
	case AnimRight:
		return "right"
	case AnimCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// frameDuration is how long one animation frame stays on screen.
const frameDuration = 1.0 / 20

// Sequence is the frames of one animation state.
type Sequence struct {
	Frames []rune
	Loop   bool
}

// skierSequences are the skier frames, one cell each.
var skierSequences = map[AnimState]Sequence{
	AnimIdle:  {Frames: []rune{'|'}, Loop: true},
	AnimLeft:  {Frames: []rune{'/'}, Loop: true},
	AnimRight: {Frames: []rune{'\\'}, Loop: true},
	AnimCrash: {Frames: []rune{'*', 'x', 'X', '#', 'X'}},
}

// Animation plays one sequence at a time. Requests are queued and the last
// one wins; the queue is consumed once per tick.
type Animation struct {
	sequences map[AnimState]Sequence

	current     AnimState
	requested   AnimState
	pending     bool
	frame       int
	elapsed     float64
	transitions int
}

// NewAnimation creates an animation showing initial.
func NewAnimation(sequences map[AnimState]Sequence, initial AnimState) *Animation {
	return &Animation{sequences: sequences, current: initial}
}

// Request asks for a state change at the next update.
func (a *Animation) Request(s AnimState) {
	a.requested = s
	a.pending = true
}

// Current returns the playing state.
func (a *Animation) Current() AnimState {
	return a.current
}

// Transitions returns how many times the playing state changed.
func (a *Animation) Transitions() int {
	return a.transitions
}

// Frame returns the rune to draw now.
func (a *Animation) Frame() rune {
	seq := a.sequences[a.current]
	if len(seq.Frames) == 0 {
		return '?'
	}
	return seq.Frames[a.frame]
}

// Done reports whether a non-looping sequence reached its last frame.
func (a *Animation) Done() bool {
	seq := a.sequences[a.current]
	return !seq.Loop && a.frame >= len(seq.Frames)-1
}

// Update consumes the pending request and advances frames.
func (a *Animation) Update(w *World, e *ecs.Entity, dt float64) {
	if a.pending {
		a.pending = false
		if a.requested != a.current {
			a.current = a.requested
			a.frame = 0
			a.elapsed = 0
			a.transitions++
		}
	}

	seq := a.sequences[a.current]
	if len(seq.Frames) < 2 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= frameDuration {
		a.elapsed -= frameDuration
		switch {
		case a.frame < len(seq.Frames)-1:
			a.frame++
		case seq.Loop:
			a.frame = 0
		}
	}
}
