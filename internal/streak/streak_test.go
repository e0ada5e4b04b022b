package streak

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestEvaluate(t *testing.T) {
	now := at(2024, time.March, 10, 9, 0)

	tests := []struct {
		name     string
		last     *time.Time
		want     Continuity
		eligible bool
		prev     int
		next     int
	}{
		{"first quest", nil, Start, false, 0, 1},
		{"yesterday", ptr(at(2024, time.March, 9, 23, 0)), Extend, true, 3, 4},
		{"yesterday early morning", ptr(at(2024, time.March, 9, 0, 1)), Extend, true, 1, 2},
		{"same day", ptr(at(2024, time.March, 10, 8, 0)), Unchanged, false, 5, 5},
		{"two day gap", ptr(at(2024, time.March, 8, 9, 0)), Reset, false, 7, 1},
		{"future date", ptr(at(2024, time.March, 11, 9, 0)), Reset, false, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.last, now)
			if got.Continuity != tt.want {
				t.Errorf("Continuity = %v, want %v", got.Continuity, tt.want)
			}
			if got.EligibleForBonus != tt.eligible {
				t.Errorf("EligibleForBonus = %v, want %v", got.EligibleForBonus, tt.eligible)
			}
			if n := got.NextStreak(tt.prev); n != tt.next {
				t.Errorf("NextStreak(%d) = %d, want %d", tt.prev, n, tt.next)
			}
		})
	}
}

func TestEvaluateCalendarNotWindow(t *testing.T) {
	// One minute apart but across midnight is a new day.
	last := at(2024, time.March, 9, 23, 59)
	now := at(2024, time.March, 10, 0, 0)
	if got := Evaluate(&last, now); got.Continuity != Extend {
		t.Errorf("Continuity = %v, want extend", got.Continuity)
	}

	// 47 hours apart still extends when the dates are consecutive.
	last = at(2024, time.March, 8, 0, 30)
	now = at(2024, time.March, 9, 23, 30)
	if got := Evaluate(&last, now); got.Continuity != Extend {
		t.Errorf("Continuity = %v, want extend", got.Continuity)
	}
	last = at(2024, time.March, 7, 23, 30)
	if got := Evaluate(&last, now); got.Continuity != Reset {
		t.Errorf("Continuity = %v, want reset", got.Continuity)
	}
}

func TestEvaluateMonthBoundary(t *testing.T) {
	last := at(2024, time.February, 29, 20, 0)
	now := at(2024, time.March, 1, 7, 0)
	if got := Evaluate(&last, now); !got.EligibleForBonus {
		t.Error("expected Feb 29 -> Mar 1 to extend the streak")
	}
}

func TestSameDayUsesNowLocation(t *testing.T) {
	utc := time.Date(2024, time.March, 10, 1, 0, 0, 0, time.UTC)
	loc := time.FixedZone("minus5", -5*60*60)
	now := time.Date(2024, time.March, 9, 22, 0, 0, 0, loc)
	if !SameDay(utc, now) {
		t.Error("expected 01:00 UTC to be the same day as 22:00 UTC-5 the previous date")
	}
}
