package ski

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
	"github.com/vovakirdan/tui-ski/internal/physics"
)

// Body names carried on contact events.
const (
	NamePlayer   = "playerNode"
	NameGate     = "gateNode"
	NameMissed   = "missedNode"
	NamePost     = "postNode"
	NameObstacle = "obstacleNode"
	NameFinish   = "finishNode"
)

// Glyphs for static slope content.
const (
	GlyphTree   = '♣'
	GlyphRock   = '●'
	GlyphPost   = '|'
	GlyphBent   = '/'
	GlyphFinish = '═'
)

// World is the content of one level: entities, their systems, and the
// physics space. It is the context every system and entity state receives.
type World struct {
	cfg     config.SkiConfig
	logger  *log.Logger
	manager *ecs.Manager[*World]
	space   *physics.Space
	size    core.Vec2
	penalty float64

	players       []*ecs.Entity
	events        []Event
	finishReached bool
}

// newWorld builds a world from a grid. penalty is the missed gate penalty
// for this level.
func newWorld(cfg config.SkiConfig, grid *tilemap.Grid, penalty float64, logger *log.Logger) *World {
	w := &World{
		cfg:     cfg,
		logger:  logger,
		manager: ecs.NewManager[*World](),
		space:   physics.NewSpace(),
		size:    grid.WorldSize(),
		penalty: penalty,
	}

	// Registration order is update order.
	w.manager.AddSystem(ecs.NewSystem[*World, *Move]("move"))
	w.manager.AddSystem(ecs.NewSystem[*World, *Animation]("animation"))
	w.manager.AddSystem(ecs.NewSystem[*World, *State]("state"))

	w.manager.OnRemove(func(e *ecs.Entity) {
		if ph, ok := ecs.Get[*Physics](e); ok {
			for _, b := range ph.Bodies {
				w.space.Remove(b)
			}
		}
	})

	tilemap.Present(grid, w)
	return w
}

// CreateNodeOf spawns the entity a tile stands for.
// Posts are drawn by their gate; Air and Snow produce nothing.
func (w *World) CreateNodeOf(tile tilemap.TileType, location core.Vec2) {
	switch tile {
	case tilemap.TileStart:
		w.spawnPlayer(core.Player1, location)
	case tilemap.TileOpponent:
		w.spawnPlayer(core.Player2, location)
	case tilemap.TileGate:
		w.spawnGate(location)
	case tilemap.TileTree, tilemap.TileRock:
		w.spawnObstacle(tile, location)
	case tilemap.TileFinish:
		w.spawnFinish(location)
	}
}

// attach adds e's bodies to the space and e to the manager.
func (w *World) attach(e *ecs.Entity, anchor physics.Anchor, bodies ...*physics.Body) {
	for _, b := range bodies {
		b.Owner = e.ID()
		w.space.Add(b, anchor)
	}
	e.Add(&Physics{Bodies: bodies})
	w.manager.Spawn(e)
}

func (w *World) spawnPlayer(id core.PlayerID, location core.Vec2) {
	if _, ok := w.Player(id); ok {
		w.logger.Warn("duplicate player tile ignored", "player", id, "x", location.X, "y", location.Y)
		return
	}

	color := core.ColorSkier
	if id != core.Player1 {
		color = core.ColorOpponent
	}
	render := &Render{Pos: location, Color: color}
	e := w.manager.NewEntity().Add(
		render,
		&Move{},
		NewAnimation(skierSequences, AnimIdle),
		&Skier{ID: id, Multiplier: w.cfg.Gate.MinScoringMultiplier},
	)
	machine := NewPlayerMachine()
	e.Add(&State{Player: machine})

	w.attach(e, render, &physics.Body{
		Name:     NamePlayer,
		Category: physics.CategoryPlayer,
		ContactTest: physics.CategoryObstacle | physics.CategoryPost | physics.CategoryFinish |
			physics.CategoryGate | physics.CategoryMissed,
		Shape:   physics.Circle(4, core.Vec2{}),
		Dynamic: true,
	})
	_ = machine.Start(Actor{World: w, Entity: e}, PlayerAppear)
	w.players = append(w.players, e)
}

func (w *World) spawnGate(location core.Vec2) {
	render := &Render{Pos: location, Glyph: GlyphPost, Color: core.ColorPost}
	machine := NewGateMachine()
	e := w.manager.NewEntity().Add(render, &Gate{}, &State{Gate: machine})

	left := core.V(-16, 0)
	right := core.V(16, 0)
	postShape := func(at core.Vec2) physics.Shape {
		return physics.Rect(4, 6, at.Add(core.V(-6, -4)))
	}

	w.attach(e, physics.Fixed(location),
		&physics.Body{Name: NameGate, Category: physics.CategoryGate, Shape: physics.Rect(256, 16, core.V(-6, -8))},
		&physics.Body{Name: NamePost, Category: physics.CategoryPost, Shape: postShape(left), Part: PostLeft},
		&physics.Body{Name: NamePost, Category: physics.CategoryPost, Shape: postShape(right), Part: PostRight},
		&physics.Body{Name: NameMissed, Category: physics.CategoryMissed, Shape: physics.Segment(core.V(-276, -8), core.V(-20, -8))},
		&physics.Body{Name: NameMissed, Category: physics.CategoryMissed, Shape: physics.Segment(core.V(8, -8), core.V(264, -8))},
	)
	_ = machine.Start(Actor{World: w, Entity: e}, GateIdle)
}

func (w *World) spawnObstacle(kind tilemap.TileType, location core.Vec2) {
	render := &Render{Pos: location, Glyph: GlyphRock, Color: core.ColorRock}
	shape := physics.Rect(14, 8, core.V(0, -2))
	if kind == tilemap.TileTree {
		render.Glyph = GlyphTree
		render.Color = core.ColorTree
		shape = physics.Rect(8, 12, core.V(0, -10))
	}
	e := w.manager.NewEntity().Add(render, &Obstacle{Kind: kind})
	w.attach(e, physics.Fixed(location), &physics.Body{
		Name:     NameObstacle,
		Category: physics.CategoryObstacle,
		Shape:    shape,
	})
}

func (w *World) spawnFinish(location core.Vec2) {
	render := &Render{Pos: location, Glyph: GlyphFinish, Color: core.ColorFinish}
	e := w.manager.NewEntity().Add(render, &FinishLine{})
	w.attach(e, physics.Fixed(location), &physics.Body{
		Name:        NameFinish,
		Category:    physics.CategoryFinish,
		ContactTest: physics.CategoryPlayer,
		Shape:       physics.Rect(256, 32, core.V(0, 64)),
	})
}

// Player returns the entity of a player.
func (w *World) Player(id core.PlayerID) (*ecs.Entity, bool) {
	for _, e := range w.players {
		if ecs.MustGet[*Skier](e).ID == id {
			return e, true
		}
	}
	return nil, false
}

// Players returns player entities in spawn order.
func (w *World) Players() []*ecs.Entity {
	return w.players
}

// Entities returns every live entity in spawn order.
func (w *World) Entities() []*ecs.Entity {
	return w.manager.Entities()
}

// Size returns the slope size in world units.
func (w *World) Size() core.Vec2 {
	return w.size
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}
