package ecs

// Manager creates entities, registers them with its systems, and removes
// them at the end of a tick.
type Manager[W any] struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	order    []*Entity
	systems  []Runner[W]
	pending  []EntityID
	onRemove []func(*Entity)
}

// NewManager creates an empty manager.
func NewManager[W any]() *Manager[W] {
	return &Manager[W]{
		nextID:   1,
		entities: make(map[EntityID]*Entity),
	}
}

// AddSystem appends a system. Systems update in the order they were added.
func (m *Manager[W]) AddSystem(r Runner[W]) {
	m.systems = append(m.systems, r)
	for _, e := range m.order {
		r.Accept(e)
	}
}

// OnRemove registers a hook called for each entity as it is removed.
func (m *Manager[W]) OnRemove(fn func(*Entity)) {
	m.onRemove = append(m.onRemove, fn)
}

// NewEntity allocates an entity with a fresh id. It does not take part in
// any system until Spawn is called.
func (m *Manager[W]) NewEntity() *Entity {
	e := newEntity(m.nextID)
	m.nextID++
	return e
}

// Spawn adds e to the manager and to every system that wants it.
func (m *Manager[W]) Spawn(e *Entity) {
	if _, ok := m.entities[e.id]; ok {
		return
	}
	m.entities[e.id] = e
	m.order = append(m.order, e)
	for _, s := range m.systems {
		s.Accept(e)
	}
}

// Entity returns a live entity by id.
func (m *Manager[W]) Entity(id EntityID) (*Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

// Entities returns live entities in spawn order.
func (m *Manager[W]) Entities() []*Entity {
	return m.order
}

// Len returns the number of live entities.
func (m *Manager[W]) Len() int {
	return len(m.order)
}

// Destroy marks an entity for removal at the next Flush.
func (m *Manager[W]) Destroy(id EntityID) {
	for _, p := range m.pending {
		if p == id {
			return
		}
	}
	m.pending = append(m.pending, id)
}

// Pending reports whether an entity is marked for removal.
func (m *Manager[W]) Pending(id EntityID) bool {
	for _, p := range m.pending {
		if p == id {
			return true
		}
	}
	return false
}

// Flush removes every entity marked by Destroy.
func (m *Manager[W]) Flush() {
	for _, id := range m.pending {
		m.remove(id)
	}
	m.pending = m.pending[:0]
}

// Clear removes every entity immediately.
func (m *Manager[W]) Clear() {
	for len(m.order) > 0 {
		m.remove(m.order[len(m.order)-1].id)
	}
	m.pending = m.pending[:0]
}

// Update runs every system once.
func (m *Manager[W]) Update(w W, dt float64) {
	for _, s := range m.systems {
		s.Update(w, dt)
	}
}

func (m *Manager[W]) remove(id EntityID) {
	e, ok := m.entities[id]
	if !ok {
		return
	}
	for _, s := range m.systems {
		s.Forget(id)
	}
	delete(m.entities, id)
	for i, o := range m.order {
		if o.id == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	for _, fn := range m.onRemove {
		fn(e)
	}
}
