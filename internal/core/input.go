package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - crosshair up, menu up
	ActionDown              // S, Down arrow - crosshair down, menu down
	ActionLeft              // A, Left arrow - crosshair left
	ActionRight             // D, Right arrow - crosshair right
	ActionFireLeft          // 1, Z - launch from the left installation
	ActionFireMiddle        // 2, X - launch from the middle installation
	ActionFireRight         // 3, C - launch from the right installation
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Backspace - go back
	ActionPause             // P, Escape - pause/unpause game
	ActionOptions           // O - options menu
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionUp:         "up",
	ActionDown:       "down",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionFireLeft:   "fire_left",
	ActionFireMiddle: "fire_middle",
	ActionFireRight:  "fire_right",
	ActionConfirm:    "confirm",
	ActionBack:       "back",
	ActionPause:      "pause",
	ActionOptions:    "options",
	ActionRestart:    "restart",
	ActionQuit:       "quit",
}

// String returns the config name of the action.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// ParseAction looks up an action by its config name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// Actions returns every bindable action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, len(actionNames)-1)
	for a := ActionUp; a <= ActionQuit; a++ {
		out = append(out, a)
	}
	return out
}

// Pointer is a mouse position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool // false until the mouse has moved over the screen
}

// InputFrame represents the player input during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the latest mouse position.
	Pointer Pointer

	// Elapsed is the wall time since the previous frame. Zero means the game
	// should use its fixed tick interval.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. Pointer is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Elapsed = f.Elapsed
	return clone
}
