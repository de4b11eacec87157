// Package fsm implements finite-state machines keyed by a state enum.
//
// A machine owns one State value per enum member. The context C is handed to
// every hook by the caller and never stored, so states carry no back
// references to their owner.
package fsm

import "fmt"

// State is one state of a machine.
type State[S comparable, C any] interface {
	// Enter runs after the machine switched into this state.
	Enter(ctx C, from S)
	// Update runs once per tick while the state is current. Returning
	// ok=true asks the machine to enter next.
	Update(ctx C, dt float64) (next S, ok bool)
	// Exit runs before the machine leaves this state.
	Exit(ctx C, to S)
	// ValidNext reports whether this state may be left for to.
	ValidNext(to S) bool
}

// Base provides no-op hooks and allows every transition.
type Base[S comparable, C any] struct{}

func (Base[S, C]) Enter(C, S) {}

func (Base[S, C]) Update(C, float64) (S, bool) {
	var zero S
	return zero, false
}

func (Base[S, C]) Exit(C, S) {}

func (Base[S, C]) ValidNext(S) bool { return true }

// Machine tracks the current state.
type Machine[S comparable, C any] struct {
	states  map[S]State[S, C]
	current S
	started bool

	// OnTransition, if set, is called after every successful Enter.
	OnTransition func(from, to S)
}

// New creates a machine over the given states. It has no current state
// until Start.
func New[S comparable, C any](states map[S]State[S, C]) *Machine[S, C] {
	return &Machine[S, C]{states: states}
}

// Start enters the initial state. Calling Start again restarts the machine.
func (m *Machine[S, C]) Start(ctx C, initial S) error {
	st, ok := m.states[initial]
	if !ok {
		return fmt.Errorf("fsm: unknown initial state %v", initial)
	}
	from := m.current
	if m.started {
		m.states[m.current].Exit(ctx, initial)
	}
	m.current = initial
	m.started = true
	st.Enter(ctx, from)
	if m.OnTransition != nil {
		m.OnTransition(from, initial)
	}
	return nil
}

// Current returns the current state. Before Start it is the zero value.
func (m *Machine[S, C]) Current() S {
	return m.current
}

// Started reports whether Start has been called.
func (m *Machine[S, C]) Started() bool {
	return m.started
}

// Is reports whether the machine is started and in state s.
func (m *Machine[S, C]) Is(s S) bool {
	return m.started && m.current == s
}

// State returns the State value registered for s.
func (m *Machine[S, C]) State(s S) State[S, C] {
	return m.states[s]
}

// CanEnter reports whether Enter(to) would succeed.
func (m *Machine[S, C]) CanEnter(to S) bool {
	if _, ok := m.states[to]; !ok || !m.started {
		return false
	}
	return m.states[m.current].ValidNext(to)
}

// Enter switches to state to, running Exit on the current state and Enter
// on the new one. It returns false and changes nothing if the current state
// does not allow the transition.
func (m *Machine[S, C]) Enter(ctx C, to S) bool {
	if !m.CanEnter(to) {
		return false
	}
	from := m.current
	m.states[from].Exit(ctx, to)
	m.current = to
	m.states[to].Enter(ctx, from)
	if m.OnTransition != nil {
		m.OnTransition(from, to)
	}
	return true
}

// Update ticks the current state and follows the transition it requests.
func (m *Machine[S, C]) Update(ctx C, dt float64) {
	if !m.started {
		return
	}
	if next, ok := m.states[m.current].Update(ctx, dt); ok {
		m.Enter(ctx, next)
	}
}

// Timer accumulates time spent in a state.
type Timer struct {
	Elapsed float64
}

// Reset zeroes the timer.
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Tick adds dt and returns the new elapsed time.
func (t *Timer) Tick(dt float64) float64 {
	t.Elapsed += dt
	return t.Elapsed
}
