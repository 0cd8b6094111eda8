package lifecycle

import "github.com/vovakirdan/gamevault/internal/core"

// Transition names the phase change applied by Machine.Apply.
type Transition int

const (
	// TransitionNone means the input left the phase unchanged.
	TransitionNone Transition = iota
	// TransitionStarted moves Ready to Playing.
	TransitionStarted
	// TransitionPaused moves Playing to Paused.
	TransitionPaused
	// TransitionResumed moves Paused back to Playing.
	TransitionResumed
	// TransitionEnded moves Playing to GameOver.
	TransitionEnded
	// TransitionReset moves GameOver back to Ready.
	TransitionReset
)

func (t Transition) String() string {
	switch t {
	case TransitionStarted:
		return "started"
	case TransitionPaused:
		return "paused"
	case TransitionResumed:
		return "resumed"
	case TransitionEnded:
		return "ended"
	case TransitionReset:
		return "reset"
	default:
		return "none"
	}
}

// Machine tracks the phase of one game session:
//
//	Ready -> Playing -> Paused -> Playing -> GameOver -> Ready
//
// Each method returns false and does nothing when the transition is not
// valid from the current phase. Valid transitions fire their hook once.
// A Machine is not safe for concurrent use; the goroutine driving the
// session owns it.
type Machine struct {
	phase core.Phase
	hooks Hooks
}

// NewMachine returns a machine in PhaseReady.
func NewMachine(h Hooks) *Machine {
	return &Machine{phase: core.PhaseReady, hooks: h}
}

// Phase returns the current phase.
func (m *Machine) Phase() core.Phase {
	return m.phase
}

// Playing reports whether the simulation may mutate state.
func (m *Machine) Playing() bool {
	return m.phase == core.PhasePlaying
}

// Start moves Ready to Playing.
func (m *Machine) Start() bool {
	if m.phase != core.PhaseReady {
		return false
	}
	m.phase = core.PhasePlaying
	m.hooks.start()
	return true
}

// Pause moves Playing to Paused.
func (m *Machine) Pause() bool {
	if m.phase != core.PhasePlaying {
		return false
	}
	m.phase = core.PhasePaused
	m.hooks.pause()
	return true
}

// Resume moves Paused to Playing.
func (m *Machine) Resume() bool {
	if m.phase != core.PhasePaused {
		return false
	}
	m.phase = core.PhasePlaying
	m.hooks.resume()
	return true
}

// End moves Playing to GameOver and reports the final score.
func (m *Machine) End(score int) bool {
	if m.phase != core.PhasePlaying {
		return false
	}
	m.phase = core.PhaseGameOver
	m.hooks.over(score)
	return true
}

// Reset moves GameOver back to Ready. No hook is attached to it.
func (m *Machine) Reset() bool {
	if m.phase != core.PhaseGameOver {
		return false
	}
	m.phase = core.PhaseReady
	return true
}

// ForceReady puts the machine in Ready without firing hooks.
// Used when a game is re-initialized by the platform.
func (m *Machine) ForceReady() {
	m.phase = core.PhaseReady
}

// Apply maps one tick's input to at most one transition.
//
//	Ready:    Primary or Confirm starts
//	Playing:  Primary or Pause pauses
//	Paused:   Primary or Pause resumes
//	GameOver: Primary, Confirm or Restart resets
//
// Repeated presses within the same tick collapse into that single
// transition, so Space twice in one tick never pauses and resumes.
func (m *Machine) Apply(in core.InputFrame) Transition {
	switch m.phase {
	case core.PhaseReady:
		if in.HasAny(core.ActionPrimary, core.ActionConfirm) && m.Start() {
			return TransitionStarted
		}
	case core.PhasePlaying:
		if in.HasAny(core.ActionPrimary, core.ActionPause) && m.Pause() {
			return TransitionPaused
		}
	case core.PhasePaused:
		if in.HasAny(core.ActionPrimary, core.ActionPause) && m.Resume() {
			return TransitionResumed
		}
	case core.PhaseGameOver:
		if in.HasAny(core.ActionPrimary, core.ActionConfirm, core.ActionRestart) && m.Reset() {
			return TransitionReset
		}
	}
	return TransitionNone
}
