package ski

import (
	"github.com/vovakirdan/tui-ski/internal/ecs"
	"github.com/vovakirdan/tui-ski/internal/fsm"
	"github.com/vovakirdan/tui-ski/internal/physics"
)

// resolve applies the game rules to the contacts of one physics step.
// Every rule involves a player; contacts between other bodies are ignored.
func (w *World) resolve(events []physics.Event) {
	for _, ev := range events {
		playerBody, other, ok := ev.Pair(physics.CategoryPlayer)
		if !ok {
			continue
		}
		player, ok := w.manager.Entity(playerBody.Owner)
		if !ok {
			continue
		}
		target, ok := w.manager.Entity(other.Owner)
		if !ok {
			continue
		}

		switch {
		case other.Category.Has(physics.CategoryFinish):
			if ev.Phase == physics.Begin {
				w.reachFinish(player)
			}
		case other.Category.Has(physics.CategoryGate):
			if ev.Phase == physics.Begin {
				gateMachine(target).Enter(Actor{World: w, Entity: target}, GatePassed)
			} else {
				w.leaveGate(player, target)
			}
		case other.Category.Has(physics.CategoryMissed):
			if ev.Phase == physics.Begin {
				w.runOutside(player, target)
			}
		case other.Category.Has(physics.CategoryPost):
			if ev.Phase == physics.Begin {
				w.hitPost(player, target, other.Part)
			}
		case other.Category.Has(physics.CategoryObstacle):
			if ev.Phase == physics.Begin {
				w.crash(player)
			} else {
				w.manager.Destroy(target.ID())
			}
		}
	}
}

func gateMachine(e *ecs.Entity) *fsm.Machine[GateState, Actor] {
	return ecs.MustGet[*State](e).Gate
}

func (w *World) resetMultiplier(skier *Skier) {
	skier.Multiplier = w.cfg.Gate.MinScoringMultiplier
}

func (w *World) reachFinish(player *ecs.Entity) {
	skier := ecs.MustGet[*Skier](player)
	if skier.ReachedFinish {
		return
	}
	skier.ReachedFinish = true
	w.finishReached = true
	w.logger.Info("finish line reached", "player", skier.ID, "elapsed", skier.Elapsed)
}

// leaveGate settles a gate when the player exits its contact region.
func (w *World) leaveGate(player, gate *ecs.Entity) {
	skier := ecs.MustGet[*Skier](player)
	if gateMachine(gate).Is(GatePassed) {
		points := w.cfg.Gate.Score * skier.Multiplier
		skier.Score += points
		skier.GatesPassed++
		ecs.MustGet[*Gate](gate).Awarded = points
		if skier.Multiplier <= w.cfg.Gate.MaxScoringMultiplier {
			skier.Multiplier++
		}
		w.emit(Event{Kind: EventGatePassed, Player: skier.ID, Points: points})
		w.logger.Info("gate passed", "player", skier.ID, "points", points, "multiplier", skier.Multiplier)
		return
	}

	skier.Elapsed += w.penalty
	skier.GatesMissed++
	w.emit(Event{Kind: EventGateMissed, Player: skier.ID, Penalty: w.penalty})
	w.logger.Info("gate missed", "player", skier.ID, "penalty", w.penalty)
}

func (w *World) runOutside(player, gate *ecs.Entity) {
	skier := ecs.MustGet[*Skier](player)
	gateMachine(gate).Enter(Actor{World: w, Entity: gate}, GateRunOutside)
	w.resetMultiplier(skier)
	w.emit(Event{Kind: EventRanOutside, Player: skier.ID})
}

func (w *World) hitPost(player, gate *ecs.Entity, side int) {
	skier := ecs.MustGet[*Skier](player)
	gateMachine(gate).Enter(Actor{World: w, Entity: gate}, GateRunOverPost)
	if side == PostLeft || side == PostRight {
		ecs.MustGet[*Gate](gate).Crooked[side] = true
	}
	w.resetMultiplier(skier)
	w.emit(Event{Kind: EventPostHit, Player: skier.ID})
}

func (w *World) crash(player *ecs.Entity) {
	skier := ecs.MustGet[*Skier](player)
	w.resetMultiplier(skier)
	if skier.Crashed || skier.ReachedFinish {
		return
	}
	skier.Crashed = true
	skier.Crashes++
	w.emit(Event{Kind: EventCrashed, Player: skier.ID})
	w.logger.Info("crash", "player", skier.ID, "crashes", skier.Crashes)
}
