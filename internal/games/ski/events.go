package ski

import (
	"fmt"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// EventKind tells what happened during a tick.
type EventKind int

const (
	EventGatePassed EventKind = iota // Points awarded
	EventGateMissed                  // Penalty added to the clock
	EventPostHit
	EventRanOutside
	EventCrashed
	EventFinished // Points is the time bonus
)

func (k EventKind) String() string {
	switch k {
	case EventGatePassed:
		return "gate-passed"
	case EventGateMissed:
		return "gate-missed"
	case EventPostHit:
		return "post-hit"
	case EventRanOutside:
		return "ran-outside"
	case EventCrashed:
		return "crashed"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is a gameplay outcome reported by Session.Tick.
type Event struct {
	Kind    EventKind
	Player  core.PlayerID
	Points  int
	Penalty float64
}

func (e Event) String() string {
	switch e.Kind {
	case EventGatePassed, EventFinished:
		return fmt.Sprintf("%s player=%d points=%d", e.Kind, e.Player, e.Points)
	case EventGateMissed:
		return fmt.Sprintf("%s player=%d penalty=%.1fs", e.Kind, e.Player, e.Penalty)
	default:
		return fmt.Sprintf("%s player=%d", e.Kind, e.Player)
	}
}
