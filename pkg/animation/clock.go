package animation

import (
	"sync/atomic"
	"time"
)

// Clock is the time source behind tickers. Tests install a fake clock with
// SetClock so ring animations advance only when the test says so.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type clockBox struct{ Clock }

var activeClock atomic.Pointer[clockBox]

func init() {
	activeClock.Store(&clockBox{systemClock{}})
}

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it during cleanup. A nil clock restores system time.
func SetClock(c Clock) Clock {
	if c == nil {
		c = systemClock{}
	}
	return activeClock.Swap(&clockBox{c}).Clock
}

// Now returns the current time from the active clock.
func Now() time.Time { return activeClock.Load().Now() }
