// Package focus implements the quest focus countdown.
package focus

import (
	"fmt"
	"time"
)

// Countdown counts a focus session down one second per tick.
type Countdown struct {
	remaining time.Duration
	total     time.Duration
	ended     bool
}

// NewCountdown starts a countdown of goalMinutes. Non-positive goals start
// already done.
func NewCountdown(goalMinutes int) Countdown {
	d := time.Duration(max(goalMinutes, 0)) * time.Minute
	return Countdown{remaining: d, total: d}
}

// Tick advances the countdown by one second.
func (c Countdown) Tick() Countdown {
	if c.Done() {
		return c
	}
	c.remaining -= time.Second
	if c.remaining < 0 {
		c.remaining = 0
	}
	return c
}

// End finishes the countdown early.
func (c Countdown) End() Countdown {
	c.ended = true
	return c
}

// Remaining returns the time left.
func (c Countdown) Remaining() time.Duration {
	if c.ended {
		return 0
	}
	return c.remaining
}

// Elapsed returns the focus time spent so far.
func (c Countdown) Elapsed() time.Duration {
	return c.total - c.remaining
}

// Total returns the goal duration.
func (c Countdown) Total() time.Duration {
	return c.total
}

// EndedEarly reports whether End was called before the timer ran out.
func (c Countdown) EndedEarly() bool {
	return c.ended && c.remaining > 0
}

// Done reports whether the countdown has reached zero or was ended.
func (c Countdown) Done() bool {
	return c.ended || c.remaining <= 0
}

// Fraction returns elapsed/total in [0, 1].
func (c Countdown) Fraction() float64 {
	if c.total <= 0 {
		return 1
	}
	return float64(c.Elapsed()) / float64(c.total)
}

// Format renders the remaining time as MM:SS.
func (c Countdown) Format() string {
	r := c.Remaining()
	m := int(r / time.Minute)
	s := int((r % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", m, s)
}
