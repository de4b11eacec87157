package ecs

import (
	"strings"
	"testing"
)

type trace struct {
	calls []string
}

type moveComp struct{ name string }

func (c *moveComp) Update(w *trace, e *Entity, dt float64) {
	w.calls = append(w.calls, "move:"+c.name)
}

type animComp struct{ name string }

func (c *animComp) Update(w *trace, e *Entity, dt float64) {
	w.calls = append(w.calls, "anim:"+c.name)
}

type tagComp struct{ value int }

func TestEntityComponentLookup(t *testing.T) {
	m := NewManager[*trace]()
	e := m.NewEntity()
	e.Add(&moveComp{name: "first"}, tagComp{value: 1})

	if !Has[*moveComp](e) {
		t.Error("Has[*moveComp]() = false, expected true")
	}
	if Has[*animComp](e) {
		t.Error("Has[*animComp]() = true, expected false")
	}
	if tag, ok := Get[tagComp](e); !ok || tag.value != 1 {
		t.Errorf("Get[tagComp]() = %v, %v", tag, ok)
	}
	if _, ok := Get[*animComp](e); ok {
		t.Error("Get[*animComp]() should report a missing component")
	}

	// Same type replaces the earlier component.
	e.Add(&moveComp{name: "second"})
	if got := MustGet[*moveComp](e).name; got != "second" {
		t.Errorf("MustGet after replace = %q, expected second", got)
	}
	if e.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", e.Len())
	}

	Remove[tagComp](e)
	if Has[tagComp](e) {
		t.Error("Remove[tagComp]() did not detach the component")
	}
}

func TestMustGetPanicsOnMissingComponent(t *testing.T) {
	m := NewManager[*trace]()
	e := m.NewEntity()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustGet() on a missing component should panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "animComp") {
			t.Errorf("panic message = %v, expected it to name the component", r)
		}
	}()
	MustGet[*animComp](e)
}

func TestSystemOrder(t *testing.T) {
	m := NewManager[*trace]()
	m.AddSystem(NewSystem[*trace, *moveComp]("move"))
	m.AddSystem(NewSystem[*trace, *animComp]("anim"))

	a := m.NewEntity().Add(&moveComp{name: "a"}, &animComp{name: "a"})
	b := m.NewEntity().Add(&animComp{name: "b"})
	c := m.NewEntity().Add(&moveComp{name: "c"})
	m.Spawn(a)
	m.Spawn(b)
	m.Spawn(c)

	w := &trace{}
	m.Update(w, 0.1)

	expected := []string{"move:a", "move:c", "anim:a", "anim:b"}
	if strings.Join(w.calls, ",") != strings.Join(expected, ",") {
		t.Errorf("update order = %v, expected %v", w.calls, expected)
	}
}

func TestSystemAddedLateAcceptsExistingEntities(t *testing.T) {
	m := NewManager[*trace]()
	e := m.NewEntity().Add(&moveComp{name: "early"})
	m.Spawn(e)

	s := NewSystem[*trace, *moveComp]("move")
	m.AddSystem(s)
	if len(s.Members()) != 1 {
		t.Errorf("Members() = %d, expected 1", len(s.Members()))
	}
}

func TestDeferredDestroy(t *testing.T) {
	m := NewManager[*trace]()
	s := NewSystem[*trace, *moveComp]("move")
	m.AddSystem(s)

	var removed []EntityID
	m.OnRemove(func(e *Entity) { removed = append(removed, e.ID()) })

	a := m.NewEntity().Add(&moveComp{name: "a"})
	b := m.NewEntity().Add(&moveComp{name: "b"})
	m.Spawn(a)
	m.Spawn(b)

	m.Destroy(a.ID())
	m.Destroy(a.ID())
	if !m.Pending(a.ID()) {
		t.Error("Pending() = false after Destroy")
	}
	if _, ok := m.Entity(a.ID()); !ok {
		t.Error("entity should stay live until Flush")
	}

	m.Flush()
	if _, ok := m.Entity(a.ID()); ok {
		t.Error("entity should be gone after Flush")
	}
	if len(removed) != 1 || removed[0] != a.ID() {
		t.Errorf("OnRemove calls = %v, expected [%d]", removed, a.ID())
	}
	if len(s.Members()) != 1 || s.Members()[0] != b {
		t.Error("system should only keep b")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", m.Len())
	}
}

func TestClear(t *testing.T) {
	m := NewManager[*trace]()
	m.AddSystem(NewSystem[*trace, *moveComp]("move"))
	count := 0
	m.OnRemove(func(*Entity) { count++ })

	for i := 0; i < 3; i++ {
		m.Spawn(m.NewEntity().Add(&moveComp{}))
	}
	m.Clear()

	if m.Len() != 0 || count != 3 {
		t.Errorf("Clear() left %d entities, removed %d", m.Len(), count)
	}

	next := m.NewEntity()
	if next.ID() != 4 {
		t.Errorf("ids should keep increasing after Clear, got %d", next.ID())
	}
}
