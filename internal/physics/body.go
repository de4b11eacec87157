// Package physics turns overlaps between trigger volumes into contact
// begin/end events. Bodies never push each other; categories only decide
// which pairs are reported.
package physics

import (
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
)

// Category is a collider bitmask.
type Category uint32

const (
	CategoryNone     Category = 0
	CategoryObstacle Category = 1 << 0
	CategoryPost     Category = 1 << 1
	CategoryFinish   Category = 1 << 2
	CategoryGate     Category = 1 << 3
	CategoryPlayer   Category = 1 << 4
	CategoryMissed   Category = 1 << 5
)

// Categories lists every single-bit category.
var Categories = []Category{
	CategoryObstacle,
	CategoryPost,
	CategoryFinish,
	CategoryGate,
	CategoryPlayer,
	CategoryMissed,
}

var categoryNames = map[Category]string{
	CategoryObstacle: "obstacle",
	CategoryPost:     "post",
	CategoryFinish:   "finish",
	CategoryGate:     "gate",
	CategoryPlayer:   "player",
	CategoryMissed:   "missed",
}

// Has reports whether c shares any bit with o.
func (c Category) Has(o Category) bool {
	return c&o != 0
}

func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}
	var parts []string
	for _, single := range Categories {
		if c.Has(single) {
			parts = append(parts, categoryNames[single])
		}
	}
	return strings.Join(parts, "|")
}

// ShapeKind selects the geometry of a Shape.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeSegment
)

// Shape is body geometry relative to the body's anchor.
type Shape struct {
	Kind   ShapeKind
	Center core.Vec2 // rect and circle center
	Size   core.Vec2 // rect width and height
	Radius float64   // circle radius
	A, B   core.Vec2 // segment endpoints
}

// Rect returns a w x h rectangle centered at center.
func Rect(w, h float64, center core.Vec2) Shape {
	return Shape{Kind: ShapeRect, Size: core.V(w, h), Center: center}
}

// Circle returns a circle of radius r centered at center.
func Circle(r float64, center core.Vec2) Shape {
	return Shape{Kind: ShapeCircle, Radius: r, Center: center}
}

// Segment returns a line from a to b.
func Segment(a, b core.Vec2) Shape {
	return Shape{Kind: ShapeSegment, A: a, B: b}
}

// Anchor supplies a body's world position.
type Anchor interface {
	Position() core.Vec2
}

// Fixed is an Anchor that never moves.
type Fixed core.Vec2

// Position returns the fixed point.
func (f Fixed) Position() core.Vec2 {
	return core.Vec2(f)
}

// Body describes one collision volume.
type Body struct {
	Name        string
	Category    Category
	ContactTest Category
	Collision   Category
	Shape       Shape
	Dynamic     bool

	// Owner is the entity the body belongs to. Part tells apart several
	// bodies of one entity, such as the two posts of a gate.
	Owner ecs.EntityID
	Part  int

	anchor  Anchor
	cpBody  *cp.Body
	cpShape *cp.Shape
	removed bool
}

// Reports reports whether a contact between a and b should produce events.
func Reports(a, b *Body) bool {
	return a.ContactTest.Has(b.Category) || b.ContactTest.Has(a.Category)
}

// Position returns the body's current anchor position.
func (b *Body) Position() core.Vec2 {
	if b.anchor == nil {
		return core.Vec2{}
	}
	return b.anchor.Position()
}

// Attached reports whether the body is in a space.
func (b *Body) Attached() bool {
	return b.cpShape != nil && !b.removed
}
