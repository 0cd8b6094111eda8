package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with these intents rather than raw keys, mouse events or
// websocket messages.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPrimary        // Space - start, pause/resume, restart depending on phase
	ActionConfirm        // Enter - start or restart
	ActionPause          // P, Escape - pause/resume
	ActionRestart        // R - restart after game over
	ActionBack           // B - back to menu
	ActionQuit           // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionPrimary: "primary",
	ActionConfirm: "confirm",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionBack:    "back",
	ActionQuit:    "quit",
}

// aliases accepted by ParseAction besides the canonical names.
var actionAliases = map[string]Action{
	"space":  ActionPrimary,
	"start":  ActionPrimary,
	"enter":  ActionConfirm,
	"escape": ActionPause,
	"esc":    ActionPause,
	"reset":  ActionRestart,
}

// String returns the lowercase wire name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps a client-provided action name to an Action.
// Unknown names yield ActionNone and false.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := actionAliases[name]; ok {
		return a, true
	}
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// Pointer is a horizontal pointer position normalized to [0, 1] across the
// game surface. Valid is false when no pointer event arrived this frame.
type Pointer struct {
	X     float64
	Valid bool
}

// InputFrame collects the input for one simulation tick.
// Actions answers "was this pressed", Sequence keeps press order so games
// can resolve several requests in one tick to the last valid one.
type InputFrame struct {
	Actions  map[Action]bool
	Sequence []Action
	Pointer  Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Sequence = append(f.Sequence, a)
}

// SetPointer records the latest pointer position, clamped to [0, 1].
func (f *InputFrame) SetPointer(x float64) {
	f.Pointer = Pointer{X: ClampF(x, 0, 1), Valid: true}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// HasAny returns true if any of the given actions was triggered.
func (f InputFrame) HasAny(actions ...Action) bool {
	for _, a := range actions {
		if f.Actions[a] {
			return true
		}
	}
	return false
}

// Empty reports whether nothing was recorded this frame.
func (f InputFrame) Empty() bool {
	return len(f.Sequence) == 0 && !f.Pointer.Valid
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Sequence = f.Sequence[:0]
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Sequence = append([]Action(nil), f.Sequence...)
	clone.Pointer = f.Pointer
	return clone
}

// Merge appends other's input after f's, keeping the newest pointer.
func (f *InputFrame) Merge(other InputFrame) {
	for _, a := range other.Sequence {
		f.Set(a)
	}
	if other.Pointer.Valid {
		f.Pointer = other.Pointer
	}
}
