package core

import "fmt"

// Phase is the lifecycle phase of a game session.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name for JSON payloads.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name written by MarshalText.
func (p *Phase) UnmarshalText(text []byte) error {
	for q := PhaseReady; q <= PhaseGameOver; q++ {
		if q.String() == string(text) {
			*p = q
			return nil
		}
	}
	return fmt.Errorf("core: unknown phase %q", text)
}
