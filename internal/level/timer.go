package level

import (
	"fmt"
	"time"
)

// Timer counts a level's budget down. It only advances while Active.
type Timer struct {
	Active   bool
	duration time.Duration
	elapsed  time.Duration
}

func NewTimer(d time.Duration) *Timer {
	return &Timer{duration: d}
}

// Reset restarts the countdown with a new budget. Active is left alone.
func (t *Timer) Reset(d time.Duration) {
	t.duration = d
	t.elapsed = 0
}

func (t *Timer) Tick(dt time.Duration) {
	if !t.Active {
		return
	}
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Left is the time remaining on the clock.
func (t *Timer) Left() time.Duration {
	return t.duration - t.elapsed
}

func (t *Timer) Finished() bool {
	return t.elapsed >= t.duration
}

// Remaining formats the time left as mm:ss, or OUT OF TIME under a second.
func (t *Timer) Remaining() string {
	s := int(t.Left() / time.Second)
	if s == 0 {
		return "OUT OF TIME"
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
