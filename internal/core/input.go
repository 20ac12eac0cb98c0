package core

import "maps"

// Action is a frontend-neutral player intent. Frontends translate keys
// into actions; games only ever see actions.
type Action int

const (
	ActionNone Action = iota

	// Movement. These are level-triggered and live in InputFrame.Held.
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Edge-triggered, live in InputFrame.Actions.
	ActionFire
	ActionPause
	ActionConfirm
	ActionBack
	ActionQuit
)

// MovementActions is the fixed order in which held directions are
// summed into a velocity.
var MovementActions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionPause:   "Pause",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is everything the player did during one frame: the
// one-shot presses in Actions and the directions held down in Held.
// The zero value is an empty frame.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

func NewInputFrame() InputFrame {
	return InputFrame{Actions: map[Action]bool{}, Held: map[Action]bool{}}
}

// Set records a one-shot press.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = map[Action]bool{}
	}
	f.Actions[a] = true
}

// Has reports a one-shot press. Reading a nil map is safe.
func (f InputFrame) Has(a Action) bool { return f.Actions[a] }

// Hold records a direction as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = map[Action]bool{}
	}
	f.Held[a] = true
}

func (f InputFrame) IsHeld(a Action) bool { return f.Held[a] }

// Clear empties the frame, keeping its maps for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone returns a deep copy that never aliases f.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	maps.Copy(c.Actions, f.Actions)
	maps.Copy(c.Held, f.Held)
	return c
}
