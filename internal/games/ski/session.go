package ski

import (
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
	"github.com/vovakirdan/tui-ski/internal/fsm"
	"github.com/vovakirdan/tui-ski/internal/games/ski/tilemap"
)

// Options configure a new session.
type Options struct {
	Config    config.SkiConfig
	LevelsDir string          // optional directory shadowing built-in levels
	Level     int             // first level to play, default 1
	Grids     []*tilemap.Grid // prebuilt level set used instead of loading files; the slice is copied
	Logger    *log.Logger
}

// RunResult summarizes player 1's run of a finished level.
type RunResult struct {
	Level       int
	Score       int
	Elapsed     float64
	TimeLimit   float64
	Bonus       int
	GatesPassed int
	GatesMissed int
	Crashes     int
	// Finished is false when another skier ended the level first.
	Finished bool
}

// Session plays the level set one tick at a time.
type Session struct {
	cfg        config.SkiConfig
	logger     *log.Logger
	difficulty *config.DifficultyManager
	grids      []*tilemap.Grid

	level   int // advanced when a level finishes
	playing int // level currently on the slope

	world     *World
	scene     *fsm.Machine[ScenePhase, *Session]
	paused    bool
	timeLimit float64
	overlay   []string
	hud       HUD
	best      int
	result    RunResult
	started   map[core.PlayerID]int // scores the level on the slope started with
	carried   map[core.PlayerID]int // scores handed to the next level
}

// LevelLayout returns the grid layout for map settings.
func LevelLayout(m config.MapSettings) tilemap.Layout {
	return tilemap.Layout{
		Columns:    m.Columns,
		Rows:       m.Rows,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
	}
}

// LoadLevels reads and decodes one grid per configured level, with files in
// dir shadowing the built-in levels.
func LoadLevels(cfg config.SkiConfig, dir string, logger *log.Logger) ([]*tilemap.Grid, error) {
	loader := tilemap.NewLoader(dir, LevelLayout(cfg.Map), logger)
	grids := make([]*tilemap.Grid, 0, len(cfg.Levels))
	for n := 1; n <= len(cfg.Levels); n++ {
		g, err := loader.Load(n)
		if err != nil {
			return nil, fmt.Errorf("ski: level %d: %w", n, err)
		}
		grids = append(grids, g)
	}
	return grids, nil
}

// NewSession loads every level and enters the Initial phase of the first
// one. A level that cannot be loaded is an error; there is no fallback.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	grids := slices.Clone(opts.Grids)
	if grids == nil {
		var err error
		if grids, err = LoadLevels(opts.Config, opts.LevelsDir, logger); err != nil {
			return nil, err
		}
	}
	if len(grids) == 0 {
		return nil, fmt.Errorf("ski: no levels")
	}
	for i, g := range grids {
		if g.Count(tilemap.TileStart) == 0 {
			return nil, fmt.Errorf("ski: level %d has no start", i+1)
		}
	}

	level := opts.Level
	if level == 0 {
		level = 1
	}
	if level < 1 || level > len(grids) {
		return nil, fmt.Errorf("ski: level %d: %w", level, tilemap.ErrLevelNotFound)
	}

	s := &Session{
		cfg:        opts.Config,
		logger:     logger,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		grids:      grids,
		level:      level,
		scene:      newSceneMachine(),
	}
	s.scene.OnTransition = func(from, to ScenePhase) {
		s.logger.Debug("phase", "from", from, "to", to, "level", s.playing)
	}
	if err := s.scene.Start(s, SceneInitial); err != nil {
		return nil, err
	}
	s.refreshHUD()
	return s, nil
}

// Tick advances the session by one host frame and returns what happened.
func (s *Session) Tick(rawDelta float64, input core.MultiInputFrame) []Event {
	dt := core.ClampF(rawDelta, 0, s.cfg.Scene.MaximumUpdateDeltaTime)
	if s.paused {
		return nil
	}
	w := s.world
	w.events = w.events[:0]

	if s.scene.Is(SceneActive) {
		for _, e := range w.Players() {
			if skier := ecs.MustGet[*Skier](e); !skier.ReachedFinish {
				skier.Elapsed += dt
			}
		}
	}

	w.resolve(w.space.Step(dt))
	if w.finishReached {
		w.finishReached = false
		s.scene.Enter(s, SceneFinish)
	}

	s.inject(input)
	w.manager.Update(w, dt)
	w.manager.Flush()
	for _, e := range w.Entities() {
		if r, ok := ecs.Get[*Render](e); ok {
			r.Advance(dt)
		}
	}

	s.scene.Update(s, dt)
	s.refreshHUD()

	events := make([]Event, len(w.events))
	copy(events, w.events)
	return events
}

// inject hands this tick's input to skiers still racing.
func (s *Session) inject(input core.MultiInputFrame) {
	if !s.scene.Is(SceneActive) {
		return
	}
	ctl := s.cfg.Controller
	for _, e := range s.world.Players() {
		skier := ecs.MustGet[*Skier](e)
		if skier.ReachedFinish {
			continue
		}
		frame := input.Player(skier.ID).Shaped(ctl.DeadZone, ctl.Numbing)
		move := ecs.MustGet[*Move](e)
		move.Movement = frame.Movement
		move.Push = frame.Push
	}
}

// Press handles a discrete button. It reports whether the session changed
// phase.
func (s *Session) Press(a core.Action) bool {
	changed := false
	switch {
	case a == core.ActionPause && s.scene.Is(SceneActive):
		changed = s.scene.Enter(s, ScenePaused)
	case (a == core.ActionPause || a == core.ActionConfirm) && s.scene.Is(ScenePaused):
		changed = s.scene.Enter(s, SceneActive)
	case a == core.ActionConfirm && s.Ready():
		changed = s.scene.Enter(s, SceneInitial)
	}
	if changed {
		s.refreshHUD()
	}
	return changed
}

// Restart replays the current level from its Initial phase with the score
// the level started with.
func (s *Session) Restart() {
	s.level = s.playing
	s.carried = maps.Clone(s.started)
	_ = s.scene.Start(s, SceneInitial)
	s.refreshHUD()
}

// ReplaceLevel swaps the grid of level n. It is used from the next time the
// level is set up.
func (s *Session) ReplaceLevel(n int, g *tilemap.Grid) error {
	if n < 1 || n > len(s.grids) {
		return fmt.Errorf("ski: level %d: %w", n, tilemap.ErrLevelNotFound)
	}
	if g.Count(tilemap.TileStart) == 0 {
		return fmt.Errorf("ski: level %d has no start", n)
	}
	s.grids[n-1] = g
	s.logger.Info("level replaced", "level", n)
	return nil
}

// setupLevel builds the world for s.level. Level 1 starts a new game with
// zero score; later levels carry the score over.
func (s *Session) setupLevel() {
	if s.level == 1 || s.carried == nil {
		s.carried = make(map[core.PlayerID]int)
	}
	s.started = maps.Clone(s.carried)

	s.playing = s.level
	score := s.carried[core.Player1]
	s.timeLimit = s.difficulty.TimeLimit(s.baseTimeLimit(s.level), s.level, score)
	penalty := s.difficulty.Penalty(s.cfg.Gate.MissedGateTimePenalty, s.level, score)

	s.world = newWorld(s.cfg, s.grids[s.level-1], penalty, s.logger)
	for _, e := range s.world.Players() {
		skier := ecs.MustGet[*Skier](e)
		skier.Score = s.carried[skier.ID]
	}
	s.result = RunResult{}
	s.logger.Info("level ready", "level", s.level, "entities", s.world.manager.Len(),
		"time_limit", s.timeLimit, "penalty", penalty)
}

// baseTimeLimit returns the configured limit of level n. Levels past the
// end of the table use its last entry.
func (s *Session) baseTimeLimit(n int) float64 {
	levels := s.cfg.Levels
	if n > len(levels) {
		n = len(levels)
	}
	return levels[n-1].TimeLimit
}

// finish awards player 1's time bonus and moves the level counter on. There
// is no bonus when player 1 was still racing as another skier finished.
func (s *Session) finish() {
	res := RunResult{Level: s.playing, TimeLimit: s.timeLimit}
	bonusText := "No Bonus Points"

	if p1, ok := s.world.Player(core.Player1); ok {
		skier := ecs.MustGet[*Skier](p1)
		res.Finished = skier.ReachedFinish
		seconds := int(math.Floor(s.timeLimit - skier.Elapsed))
		switch {
		case !res.Finished:
			bonusText = "OPPONENT FINISHED FIRST"
		case seconds > 0:
			res.Bonus = seconds * s.cfg.Scene.TimeBonusScore
			skier.Score += res.Bonus
			bonusText = fmt.Sprintf("Bonus Points %d X%d", s.cfg.Scene.TimeBonusScore, seconds)
		}
		res.Score = skier.Score
		res.Elapsed = skier.Elapsed
		res.GatesPassed = skier.GatesPassed
		res.GatesMissed = skier.GatesMissed
		res.Crashes = skier.Crashes
	}
	s.result = res
	s.carried = make(map[core.PlayerID]int)
	for _, e := range s.world.Players() {
		skier := ecs.MustGet[*Skier](e)
		s.carried[skier.ID] = skier.Score
	}
	s.world.emit(Event{Kind: EventFinished, Player: core.Player1, Points: res.Bonus})
	s.logger.Info("level complete", "level", res.Level, "score", res.Score, "elapsed", res.Elapsed, "bonus", res.Bonus)

	s.overlay = []string{
		fmt.Sprintf("LEVEL %d COMPLETE", res.Level),
		"TIME " + clock(res.Elapsed),
		bonusText,
		fmt.Sprintf("SCORE %06d", res.Score),
	}

	s.level++
	if s.level > len(s.grids) {
		s.level = 1
	}
}

// Phase returns the session phase.
func (s *Session) Phase() ScenePhase {
	return s.scene.Current()
}

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool {
	return s.paused
}

// Ready reports whether Confirm starts the next level.
func (s *Session) Ready() bool {
	st, ok := s.scene.State(SceneFinish).(*finishState)
	return ok && s.scene.Is(SceneFinish) && st.ready
}

// Level returns the level on the slope.
func (s *Session) Level() int {
	return s.playing
}

// NextLevel returns the level the next Initial phase will set up.
func (s *Session) NextLevel() int {
	return s.level
}

// LevelCount returns the number of levels in the set.
func (s *Session) LevelCount() int {
	return len(s.grids)
}

// TimeLimit returns the time limit of the level on the slope.
func (s *Session) TimeLimit() float64 {
	return s.timeLimit
}

// World returns the content of the level on the slope.
func (s *Session) World() *World {
	return s.world
}

// Skier returns the score state of a player.
func (s *Session) Skier(id core.PlayerID) (*Skier, bool) {
	e, ok := s.world.Player(id)
	if !ok {
		return nil, false
	}
	return ecs.MustGet[*Skier](e), true
}

// Result returns player 1's summary while the session shows a finished
// level.
func (s *Session) Result() (RunResult, bool) {
	return s.result, s.scene.Is(SceneFinish)
}

// State returns the snapshot polled by the platform.
func (s *Session) State() core.GameState {
	st := core.GameState{
		Level:    s.playing,
		Phase:    s.scene.Current().String(),
		Finished: s.scene.Is(SceneFinish),
		Paused:   s.paused,
	}
	if skier, ok := s.Skier(core.Player1); ok {
		st.Score = skier.Score
	}
	return st
}
