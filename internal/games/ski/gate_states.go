package ski

import "github.com/vovakirdan/tui-ski/internal/fsm"

// GateState is a state of the gate machine. Contacts drive every transition.
type GateState int

const (
	GateIdle GateState = iota
	GatePassed
	GateRunOverPost
	GateRunOutside
)

func (s GateState) String() string {
	switch s {
	case GateIdle:
		return "idle"
	case GatePassed:
		return "passed"
	case GateRunOverPost:
		return "run-over-post"
	case GateRunOutside:
		return "run-outside"
	default:
		return "unknown"
	}
}

// Failed reports whether the gate can no longer be passed.
func (s GateState) Failed() bool {
	return s == GateRunOverPost || s == GateRunOutside
}

// NewGateMachine builds the gate machine. Start it with GateIdle.
func NewGateMachine() *fsm.Machine[GateState, Actor] {
	return fsm.New(map[GateState]fsm.State[GateState, Actor]{
		GateIdle:        fsm.Base[GateState, Actor]{},
		GatePassed:      fsm.Base[GateState, Actor]{},
		GateRunOverPost: failedState{other: GateRunOutside},
		GateRunOutside:  failedState{other: GateRunOverPost},
	})
}

// failedState may only switch to the other failed state.
type failedState struct {
	fsm.Base[GateState, Actor]
	other GateState
}

func (s failedState) ValidNext(to GateState) bool {
	return to == s.other
}
