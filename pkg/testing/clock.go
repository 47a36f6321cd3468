package testing

import (
	"sync"
	"time"

	"github.com/go-drift/progressring/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Cleaner is the subset of testing.TB used to restore global state.
type Cleaner interface {
	Helper()
	Cleanup(func())
}

// UseFakeClock installs a FakeClock as the animation clock for the duration
// of the test and restores the previous clock on cleanup.
func UseFakeClock(t Cleaner) *FakeClock {
	t.Helper()
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

// Pump advances the clock by d and steps every active ticker once.
func (c *FakeClock) Pump(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}
