package ski

import (
	"fmt"

	"github.com/vovakirdan/tui-ski/internal/fsm"
)

// ScenePhase is a state of the session machine.
type ScenePhase int

const (
	SceneInitial ScenePhase = iota
	SceneActive
	ScenePaused
	SceneFinish
)

func (p ScenePhase) String() string {
	switch p {
	case SceneInitial:
		return "initial"
	case SceneActive:
		return "active"
	case ScenePaused:
		return "paused"
	case SceneFinish:
		return "finish"
	default:
		return "unknown"
	}
}

func newSceneMachine() *fsm.Machine[ScenePhase, *Session] {
	return fsm.New(map[ScenePhase]fsm.State[ScenePhase, *Session]{
		SceneInitial: &initialState{},
		SceneActive:  &activeState{},
		ScenePaused:  &pausedState{},
		SceneFinish:  &finishState{},
	})
}

// initialState builds the level and shows the countdown.
type initialState struct {
	fsm.Base[ScenePhase, *Session]
	fsm.Timer
}

func (st *initialState) Enter(s *Session, from ScenePhase) {
	st.Reset()
	s.paused = false
	s.setupLevel()
	s.overlay = []string{
		"PLAYER GET READY!",
		fmt.Sprintf("LEVEL %d", s.playing),
		"LIMIT " + clock(s.timeLimit),
	}
}

func (st *initialState) Update(s *Session, dt float64) (ScenePhase, bool) {
	if st.Tick(dt) > s.cfg.Scene.InitialDuration {
		return SceneActive, true
	}
	return SceneInitial, false
}

func (st *initialState) ValidNext(to ScenePhase) bool {
	return to == SceneActive
}

// activeState runs the race.
type activeState struct {
	fsm.Base[ScenePhase, *Session]
}

func (st *activeState) Enter(s *Session, from ScenePhase) {
	s.paused = false
	s.overlay = nil
}

func (st *activeState) ValidNext(to ScenePhase) bool {
	return to == ScenePaused || to == SceneFinish
}

// pausedState freezes the simulation.
type pausedState struct {
	fsm.Base[ScenePhase, *Session]
}

func (st *pausedState) Enter(s *Session, from ScenePhase) {
	s.paused = true
	s.overlay = []string{"-- PAUSED --"}
}

func (st *pausedState) Exit(s *Session, to ScenePhase) {
	s.paused = false
}

func (st *pausedState) ValidNext(to ScenePhase) bool {
	return to == SceneActive
}

// finishState shows the summary. The next level can be started once the
// bonus has been on screen for a while.
type finishState struct {
	fsm.Base[ScenePhase, *Session]
	fsm.Timer
	ready bool
}

func (st *finishState) Enter(s *Session, from ScenePhase) {
	st.Reset()
	st.ready = false
	s.finish()
}

func (st *finishState) Update(s *Session, dt float64) (ScenePhase, bool) {
	if st.Tick(dt) >= s.cfg.Scene.BeforeBonusDuration {
		st.ready = true
	}
	return SceneFinish, false
}

func (st *finishState) ValidNext(to ScenePhase) bool {
	return to == SceneInitial
}
