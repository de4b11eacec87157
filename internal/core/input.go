package core

import "math"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // steer left
	ActionRight          // steer right
	ActionPush           // push off with the poles to speed up
	ActionPause          // toggle pause
	ActionConfirm        // resume, or start the next run after a finish
	ActionQuit           // leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPush:
		return "Push"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a skier on the slope. Player1 follows the camera.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// InputFrame is the continuous input for one player during one tick:
// a movement vector and the push button.
type InputFrame struct {
	Movement Vec2
	Push     bool
}

// Steering builds a frame from held directions.
func Steering(left, right, push bool) InputFrame {
	var f InputFrame
	if left {
		f.Movement.X--
	}
	if right {
		f.Movement.X++
	}
	f.Push = push
	return f
}

// Shaped applies a stick dead zone and numbing ratio to the lateral axis.
// Inside the dead zone the axis reads zero; outside it is scaled by numbing.
func (f InputFrame) Shaped(deadZone, numbing float64) InputFrame {
	if math.Abs(f.Movement.X) < deadZone {
		f.Movement.X = 0
	} else {
		f.Movement.X = ClampF(f.Movement.X, -1, 1) * numbing
	}
	return f
}

// MultiInputFrame contains input from all players for a single tick.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{ByPlayer: make(map[PlayerID]InputFrame)}
}

// Player returns the input frame for a specific player.
// Players without input get a zero frame.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return InputFrame{}
	}
	return m.ByPlayer[id]
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}
