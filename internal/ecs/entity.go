// Package ecs holds entities, their capability components, and the component
// systems that update them once per tick.
package ecs

import (
	"fmt"
	"reflect"
)

// EntityID identifies an entity within a Manager. Zero is never assigned.
type EntityID uint64

// Entity owns at most one component per concrete component type.
type Entity struct {
	id         EntityID
	components map[reflect.Type]any
}

func newEntity(id EntityID) *Entity {
	return &Entity{id: id, components: make(map[reflect.Type]any)}
}

// ID returns the entity identity.
func (e *Entity) ID() EntityID {
	return e.id
}

// Add attaches a component. A component of the same type that is already
// attached is replaced.
func (e *Entity) Add(components ...any) *Entity {
	for _, c := range components {
		e.components[reflect.TypeOf(c)] = c
	}
	return e
}

// Len returns the number of attached components.
func (e *Entity) Len() int {
	return len(e.components)
}

// Get returns the component of type T.
func Get[T any](e *Entity) (T, bool) {
	c, ok := e.components[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}

// MustGet returns the component of type T and panics if it is missing.
// A missing component means the entity was assembled wrong.
func MustGet[T any](e *Entity) T {
	c, ok := Get[T](e)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no %v component", e.id, reflect.TypeFor[T]()))
	}
	return c
}

// Has reports whether the entity has a component of type T.
func Has[T any](e *Entity) bool {
	_, ok := e.components[reflect.TypeFor[T]()]
	return ok
}

// Remove detaches the component of type T, if any.
func Remove[T any](e *Entity) {
	delete(e.components, reflect.TypeFor[T]())
}
