package ski

import (
	"github.com/vovakirdan/tui-ski/internal/ecs"
	"github.com/vovakirdan/tui-ski/internal/fsm"
)

// PlayerState is a state of the skier machine.
type PlayerState int

const (
	PlayerAppear PlayerState = iota
	PlayerInputControlled
	PlayerCrashed
	PlayerReachedFinish
)

func (s PlayerState) String() string {
	switch s {
	case PlayerAppear:
		return "appear"
	case PlayerInputControlled:
		return "input-controlled"
	case PlayerCrashed:
		return "crashed"
	case PlayerReachedFinish:
		return "reached-finish"
	default:
		return "unknown"
	}
}

// NewPlayerMachine builds the skier machine. Call Start with PlayerAppear
// once the entity has its Render, Move and Skier components.
func NewPlayerMachine() *fsm.Machine[PlayerState, Actor] {
	return fsm.New(map[PlayerState]fsm.State[PlayerState, Actor]{
		PlayerAppear:          &appearState{},
		PlayerInputControlled: &inputControlledState{},
		PlayerCrashed:         &crashedState{},
		PlayerReachedFinish:   &reachedFinishState{},
	})
}

// appearState holds the skier still at the start.
type appearState struct {
	fsm.Base[PlayerState, Actor]
	fsm.Timer
}

func (s *appearState) Enter(a Actor, from PlayerState) {
	s.Reset()
	move := ecs.MustGet[*Move](a.Entity)
	move.Locked = true
	move.Speed = 0
}

func (s *appearState) Update(a Actor, dt float64) (PlayerState, bool) {
	ecs.MustGet[*Move](a.Entity).Speed = 0
	if s.Tick(dt) >= a.World.cfg.Player.AppearDuration {
		return PlayerInputControlled, true
	}
	return PlayerAppear, false
}

func (s *appearState) Exit(a Actor, to PlayerState) {
	ecs.MustGet[*Move](a.Entity).Locked = false
}

func (s *appearState) ValidNext(to PlayerState) bool {
	return to == PlayerInputControlled
}

// inputControlledState follows player input until a crash or the finish.
type inputControlledState struct {
	fsm.Base[PlayerState, Actor]
}

func (s *inputControlledState) Enter(a Actor, from PlayerState) {
	ecs.MustGet[*Move](a.Entity).Speed = a.World.cfg.Player.DownhillSpeedMin
}

func (s *inputControlledState) Update(a Actor, dt float64) (PlayerState, bool) {
	skier := ecs.MustGet[*Skier](a.Entity)
	if skier.Crashed {
		return PlayerCrashed, true
	}
	if skier.ReachedFinish {
		return PlayerReachedFinish, true
	}
	return PlayerInputControlled, false
}

func (s *inputControlledState) ValidNext(to PlayerState) bool {
	return to == PlayerCrashed || to == PlayerReachedFinish
}

// crashedState slides the fallen skier down and lets them up again.
type crashedState struct {
	fsm.Base[PlayerState, Actor]
	fsm.Timer
	startY float64
}

func (s *crashedState) Enter(a Actor, from PlayerState) {
	s.Reset()
	p := a.World.cfg.Player
	render := ecs.MustGet[*Render](a.Entity)
	s.startY = render.Pos.Y
	render.SlideBy(-p.CrashSlideDistance, p.CrashSlideDuration)
	if anim, ok := ecs.Get[*Animation](a.Entity); ok {
		anim.Request(AnimCrash)
	}
	ecs.MustGet[*Move](a.Entity).Speed = 0
}

func (s *crashedState) Update(a Actor, dt float64) (PlayerState, bool) {
	if s.Tick(dt) >= a.World.cfg.Player.CrashStateDuration {
		ecs.MustGet[*Skier](a.Entity).Crashed = false
		return PlayerInputControlled, true
	}
	return PlayerCrashed, false
}

// Exit undoes the slide so the skier continues from where they fell.
func (s *crashedState) Exit(a Actor, to PlayerState) {
	render := ecs.MustGet[*Render](a.Entity)
	render.FinishSlide()
	render.Pos.Y += a.World.cfg.Player.CrashSlideDistance
	a.World.logger.Debug("skier up again", "entity", a.Entity.ID(), "y", render.Pos.Y, "fell_at", s.startY)
}

func (s *crashedState) ValidNext(to PlayerState) bool {
	return to == PlayerInputControlled
}

// reachedFinishState steers the skier to the middle of the slope and lets
// them coast to a stop.
type reachedFinishState struct {
	fsm.Base[PlayerState, Actor]
	fsm.Timer
}

func (s *reachedFinishState) Enter(a Actor, from PlayerState) {
	s.Reset()
	ecs.MustGet[*Move](a.Entity).Speed = a.World.cfg.Player.DownhillSpeedMin
}

func (s *reachedFinishState) Update(a Actor, dt float64) (PlayerState, bool) {
	p := a.World.cfg.Player
	move := ecs.MustGet[*Move](a.Entity)
	x := ecs.MustGet[*Render](a.Entity).Pos.X

	switch {
	case x < p.FinishBandMin:
		move.Movement.X = p.FinishSteering
	case x > p.FinishBandMax:
		move.Movement.X = -p.FinishSteering
	default:
		move.Movement.X = 0
	}

	if s.Tick(dt) >= p.ReachedFinishLineStateDuration {
		move.Speed = 0
	}
	return PlayerReachedFinish, false
}

func (s *reachedFinishState) ValidNext(PlayerState) bool {
	return false
}
