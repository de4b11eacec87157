package ski

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// HUD is the display text refreshed after every tick.
type HUD struct {
	Score      string
	Time       string
	Level      string
	Multiplier string
	Best       string
	Overlay    []string // centered messages of the current phase
}

// HUD returns the display text of the last tick.
func (s *Session) HUD() HUD {
	return s.hud
}

func (s *Session) refreshHUD() {
	h := HUD{
		Score:      fmt.Sprintf("%06d", 0),
		Time:       clock(0),
		Level:      fmt.Sprintf("LEVEL %d", s.playing),
		Multiplier: fmt.Sprintf("x%d", s.cfg.Gate.MinScoringMultiplier),
		Best:       fmt.Sprintf("%06d", s.best),
		Overlay:    s.overlay,
	}
	if skier, ok := s.Skier(core.Player1); ok {
		h.Score = fmt.Sprintf("%06d", skier.Score)
		h.Best = fmt.Sprintf("%06d", max(s.best, skier.Score))
		h.Time = clock(skier.Elapsed)
		h.Multiplier = fmt.Sprintf("x%d", skier.Multiplier)
	}
	s.hud = h
}

// SetBest sets the stored high score shown next to the running score.
func (s *Session) SetBest(score int) {
	s.best = score
	s.refreshHUD()
}

// clock formats seconds as mm:ss. Negative values read 00:00.
func clock(seconds float64) string {
	total := int(math.Max(0, seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
