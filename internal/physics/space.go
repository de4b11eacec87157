package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// Phase tells a contact begin from a contact end.
type Phase int

const (
	Begin Phase = iota
	End
)

func (p Phase) String() string {
	if p == Begin {
		return "begin"
	}
	return "end"
}

// Event is one reported contact between two bodies.
type Event struct {
	Phase Phase
	A, B  *Body
}

// Pair returns the body of category c and the other body of the event.
func (e Event) Pair(c Category) (mine, other *Body, ok bool) {
	switch {
	case e.A.Category.Has(c):
		return e.A, e.B, true
	case e.B.Category.Has(c):
		return e.B, e.A, true
	}
	return nil, nil, false
}

// Space holds every body of a level. Shapes are sensors, so bodies only
// report overlaps and never resolve them.
type Space struct {
	space  *cp.Space
	bodies []*Body
	begins []Event
	ends   []Event
}

// NewSpace creates an empty space with zero gravity.
func NewSpace() *Space {
	s := &Space{space: cp.NewSpace()}
	s.space.SetGravity(cp.Vector{})
	s.setupHandlers()
	return s
}

func (s *Space) setupHandlers() {
	for i, a := range Categories {
		for _, b := range Categories[i:] {
			h := s.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
			h.UserData = s
			h.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
				return userData.(*Space).queue(Begin, arb)
			}
			h.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
				userData.(*Space).queue(End, arb)
			}
		}
	}
}

func (s *Space) queue(phase Phase, arb *cp.Arbiter) bool {
	shapeA, shapeB := arb.Shapes()
	a, okA := shapeA.UserData.(*Body)
	b, okB := shapeB.UserData.(*Body)
	if !okA || !okB || a.removed || b.removed || !Reports(a, b) {
		return false
	}
	if phase == Begin {
		s.begins = append(s.begins, Event{Phase: Begin, A: a, B: b})
	} else {
		s.ends = append(s.ends, Event{Phase: End, A: a, B: b})
	}
	return true
}

// Add inserts b into the space, positioned by anchor. Static bodies are
// placed once; dynamic bodies follow their anchor on every Step.
func (s *Space) Add(b *Body, anchor Anchor) {
	b.anchor = anchor
	b.removed = false
	pos := anchor.Position()

	var owner *cp.Body
	origin := pos
	if b.Dynamic {
		owner = cp.NewBody(1, math.Inf(1))
		owner.SetPosition(vec(pos))
		s.space.AddBody(owner)
		origin = core.Vec2{}
	} else {
		owner = s.space.StaticBody
	}

	var shape *cp.Shape
	switch b.Shape.Kind {
	case ShapeCircle:
		shape = cp.NewCircle(owner, b.Shape.Radius, vec(origin.Add(b.Shape.Center)))
	case ShapeSegment:
		shape = cp.NewSegment(owner, vec(origin.Add(b.Shape.A)), vec(origin.Add(b.Shape.B)), 0)
	default:
		c := origin.Add(b.Shape.Center)
		hw, hh := b.Shape.Size.X/2, b.Shape.Size.Y/2
		shape = cp.NewBox2(owner, cp.BB{L: c.X - hw, B: c.Y - hh, R: c.X + hw, T: c.Y + hh}, 0)
	}
	shape.SetSensor(true)
	shape.SetCollisionType(cp.CollisionType(b.Category))
	shape.UserData = b
	s.space.AddShape(shape)

	b.cpBody = owner
	b.cpShape = shape
	s.bodies = append(s.bodies, b)
}

// Remove takes b out of the space. Pending events that involve b are
// dropped.
func (s *Space) Remove(b *Body) {
	if !b.Attached() {
		return
	}
	b.removed = true
	s.space.RemoveShape(b.cpShape)
	if b.Dynamic {
		s.space.RemoveBody(b.cpBody)
	}
	b.cpShape = nil
	b.cpBody = nil
	for i, o := range s.bodies {
		if o == b {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			break
		}
	}
}

// Len returns the number of bodies in the space.
func (s *Space) Len() int {
	return len(s.bodies)
}

// Step moves dynamic bodies to their anchors, runs the overlap pass, and
// returns the contacts it reported: every begin before every end.
func (s *Space) Step(dt float64) []Event {
	if dt <= 0 {
		return nil
	}
	for _, b := range s.bodies {
		if b.Dynamic {
			b.cpBody.SetVelocity(0, 0)
			b.cpBody.SetPosition(vec(b.anchor.Position()))
		}
	}
	s.space.Step(dt)

	events := make([]Event, 0, len(s.begins)+len(s.ends))
	for _, list := range [][]Event{s.begins, s.ends} {
		for _, e := range list {
			if !e.A.removed && !e.B.removed {
				events = append(events, e)
			}
		}
	}
	s.begins = s.begins[:0]
	s.ends = s.ends[:0]
	return events
}

func vec(v core.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}
