// Package streak decides daily-streak continuity by calendar date.
package streak

import "time"

// Continuity describes how a new quest relates to the previous one.
type Continuity int

const (
	Start     Continuity = iota // no prior quest
	Extend                      // previous quest was yesterday
	Unchanged                   // previous quest was earlier today
	Reset                       // gap of two or more days, or a future date
)

func (c Continuity) String() string {
	switch c {
	case Start:
		return "start"
	case Extend:
		return "extend"
	case Unchanged:
		return "unchanged"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Evaluation is a single streak decision. The bonus flag and the next
// streak value are derived from the same Continuity so they cannot disagree.
type Evaluation struct {
	Continuity       Continuity
	EligibleForBonus bool
}

// Evaluate compares the last quest date against now. Dates are compared by
// year, month and day in now's location.
func Evaluate(last *time.Time, now time.Time) Evaluation {
	if last == nil {
		return Evaluation{Continuity: Start}
	}
	if SameDay(*last, now.AddDate(0, 0, -1)) {
		return Evaluation{Continuity: Extend, EligibleForBonus: true}
	}
	if SameDay(*last, now) {
		return Evaluation{Continuity: Unchanged}
	}
	return Evaluation{Continuity: Reset}
}

// NextStreak returns the streak to commit given the previous value.
func (e Evaluation) NextStreak(prev int) int {
	switch e.Continuity {
	case Extend:
		return prev + 1
	case Unchanged:
		return prev
	default:
		return 1
	}
}

// SameDay reports whether a and b fall on the same calendar date in b's
// location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
