package focus

import (
	"context"
	"sync"
	"time"
)

// Timer drives a Countdown from a real clock.
type Timer struct {
	interval time.Duration

	mu        sync.Mutex
	countdown Countdown
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewTimer creates a timer for goalMinutes ticking once per second.
func NewTimer(goalMinutes int) *Timer {
	return newTimer(NewCountdown(goalMinutes), time.Second)
}

func newTimer(c Countdown, interval time.Duration) *Timer {
	return &Timer{
		interval:  interval,
		countdown: c,
		stop:      make(chan struct{}),
	}
}

// Run ticks until the countdown is done, Stop is called, or ctx is
// cancelled. onTick, if set, receives the countdown after every tick. The
// ticker is always stopped before Run returns.
func (t *Timer) Run(ctx context.Context, onTick func(Countdown)) Countdown {
	if c := t.Countdown(); c.Done() {
		return c
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return t.Countdown()
		case <-t.stop:
			return t.Countdown()
		case <-ticker.C:
			t.mu.Lock()
			t.countdown = t.countdown.Tick()
			c := t.countdown
			t.mu.Unlock()

			if onTick != nil {
				onTick(c)
			}
			if c.Done() {
				return c
			}
		}
	}
}

// Stop ends the countdown early and makes Run return. Safe to call more
// than once.
func (t *Timer) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		t.countdown = t.countdown.End()
		t.mu.Unlock()
		close(t.stop)
	})
}

// Countdown returns the current state.
func (t *Timer) Countdown() Countdown {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.countdown
}
