package quest

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a lifecycle step is taken out of order.
var ErrInvalidTransition = errors.New("invalid quest transition")

// Phase is the position of a quest in its lifecycle.
type Phase int

const (
	PhasePlanned     Phase = iota // batch shown, not yet confirmed
	PhaseFocus                    // focus timer running
	PhaseQuizPending              // waiting for quiz generation or answers
	PhaseResolved                 // rewards committed
)

func (p Phase) String() string {
	switch p {
	case PhasePlanned:
		return "planned"
	case PhaseFocus:
		return "focus"
	case PhaseQuizPending:
		return "quiz-pending"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Lifecycle moves a quest forward through Planned, Focus, QuizPending and
// Resolved. Transitions are one-way, so a quest can be resolved at most once.
type Lifecycle struct {
	Quest Quest
	phase Phase
}

// Start returns a lifecycle in the planned phase.
func Start(q Quest) *Lifecycle {
	return &Lifecycle{Quest: q, phase: PhasePlanned}
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase {
	return l.phase
}

// Confirm starts the focus session.
func (l *Lifecycle) Confirm() error {
	return l.advance(PhasePlanned, PhaseFocus)
}

// FinishFocus ends the focus session, whether by timer or early exit.
func (l *Lifecycle) FinishFocus() error {
	return l.advance(PhaseFocus, PhaseQuizPending)
}

// Resolve marks the quest as committed.
func (l *Lifecycle) Resolve() error {
	return l.advance(PhaseQuizPending, PhaseResolved)
}

func (l *Lifecycle) advance(from, to Phase) error {
	if l.phase != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.phase, to)
	}
	l.phase = to
	return nil
}
