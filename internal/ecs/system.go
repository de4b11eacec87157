package ecs

// Updater is a component that takes part in a System. W is the world handle
// passed into every update; components never store it.
type Updater[W any] interface {
	Update(w W, e *Entity, dt float64)
}

// Runner is the part of a System the Manager drives.
type Runner[W any] interface {
	Name() string
	Accept(e *Entity) bool
	Forget(id EntityID)
	Update(w W, dt float64)
}

// System updates the T component of each member entity, in the order the
// entities were accepted.
type System[W any, T Updater[W]] struct {
	name    string
	members []*Entity
}

// NewSystem creates an empty system for component type T.
func NewSystem[W any, T Updater[W]](name string) *System[W, T] {
	return &System[W, T]{name: name}
}

// Name returns the system name.
func (s *System[W, T]) Name() string {
	return s.name
}

// Accept adds e if it has a T component.
func (s *System[W, T]) Accept(e *Entity) bool {
	if !Has[T](e) {
		return false
	}
	for _, m := range s.members {
		if m.id == e.id {
			return true
		}
	}
	s.members = append(s.members, e)
	return true
}

// Forget drops the entity with the given id.
func (s *System[W, T]) Forget(id EntityID) {
	for i, m := range s.members {
		if m.id == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return
		}
	}
}

// Members returns the member entities in update order.
func (s *System[W, T]) Members() []*Entity {
	return s.members
}

// Update calls Update on every member's T component.
func (s *System[W, T]) Update(w W, dt float64) {
	for _, e := range s.members {
		MustGet[T](e).Update(w, e, dt)
	}
}
