package session

import "fmt"

// Phase represents one stage of the fixed session lifecycle.
type Phase int

const (
	PhaseWelcome Phase = iota // Waiting for the student to start
	PhaseTyped                // Answering typed questions
	PhaseVideoIntro           // Instructions before the timed phase
	PhaseTimed                // Timed recording questions
	PhaseComplete             // Finished; record persisted
	PhaseAbandoned            // Aborted; nothing persisted
)

// transitions is the full transition table. A phase may only move to one of
// the listed successors; PhaseAbandoned is additionally reachable from every
// non-terminal phase via Abandon.
var transitions = map[Phase][]Phase{
	PhaseWelcome:    {PhaseTyped},
	PhaseTyped:      {PhaseTyped, PhaseVideoIntro},
	PhaseVideoIntro: {PhaseTimed},
	PhaseTimed:      {PhaseTimed, PhaseComplete},
	PhaseComplete:   {},
	PhaseAbandoned:  {},
}

// CanEnter reports whether moving from p to next is a legal transition.
func (p Phase) CanEnter(next Phase) bool {
	if next == PhaseAbandoned {
		return !p.Terminal()
	}
	for _, t := range transitions[p] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the phase can only be left by constructing a
// brand-new session.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseAbandoned
}

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseTyped:
		return "typed"
	case PhaseVideoIntro:
		return "video_intro"
	case PhaseTimed:
		return "timed"
	case PhaseComplete:
		return "complete"
	case PhaseAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// InvalidTransitionError reports an operation attempted in the wrong phase.
type InvalidTransitionError struct {
	From Phase
	Op   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from phase %s", e.Op, e.From)
}
