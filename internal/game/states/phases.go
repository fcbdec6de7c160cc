package states

import "fmt"

// MatchPhase represents the current phase of a match
type MatchPhase int

const (
	// PhaseInitializing - Engine object creation
	PhaseInitializing MatchPhase = iota

	// PhaseStarting - Board generation, territory partition
	PhaseStarting

	// PhaseRunning - Active gameplay
	PhaseRunning

	// PhaseEnding - Winner determination, cleanup
	PhaseEnding

	// PhaseEnded - Final state
	PhaseEnded

	// PhaseError - Unrecoverable failure state
	PhaseError
)

// String returns the string representation of a MatchPhase
func (p MatchPhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseStarting:
		return "Starting"
	case PhaseRunning:
		return "Running"
	case PhaseEnding:
		return "Ending"
	case PhaseEnded:
		return "Ended"
	case PhaseError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p MatchPhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseError
}

// CanAdvance returns true if turns can be processed in this phase
func (p MatchPhase) CanAdvance() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p MatchPhase) AllowedTransitions() []MatchPhase {
	switch p {
	case PhaseInitializing:
		return []MatchPhase{PhaseStarting, PhaseError}
	case PhaseStarting:
		return []MatchPhase{PhaseRunning, PhaseError}
	case PhaseRunning:
		return []MatchPhase{PhaseEnding, PhaseError}
	case PhaseEnding:
		return []MatchPhase{PhaseEnded, PhaseError}
	default:
		return []MatchPhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p MatchPhase) CanTransitionTo(target MatchPhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a MatchPhase
func ParsePhase(s string) MatchPhase {
	switch s {
	case "Initializing":
		return PhaseInitializing
	case "Starting":
		return PhaseStarting
	case "Running":
		return PhaseRunning
	case "Ending":
		return PhaseEnding
	case "Ended":
		return PhaseEnded
	case "Error":
		return PhaseError
	default:
		return PhaseInitializing
	}
}
