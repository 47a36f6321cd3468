// Package animation provides the timing primitives behind progress ring
// animations.
//
// # Core Components
//
//   - [AnimationController]: Drives a value from 0.0 to 1.0 over a duration
//     with an easing curve, reporting value and status changes to listeners.
//
//   - [Tween]: Maps the controller's 0-1 value onto another range, for
//     example the from/to stroke end of a ring animation.
//
//   - Curves: [LinearCurve], [EaseIn], [EaseOut], [EaseInOut], [CubicBezier]
//     and the spring-backed [SpringCurve].
//
//   - [Ticker] and [Clock]: frame callbacks driven by [StepTickers] from the
//     host loop, timed by a replaceable clock so tests stay deterministic.
//
// # Basic Usage
//
//	controller := animation.NewAnimationController(300 * time.Millisecond)
//	stroke := animation.TweenFloat64(0, 1)
//	controller.AddListener(func() {
//	    ring.MarkNeedsPaint()
//	    _ = stroke.Transform(controller)
//	})
//	controller.Forward()
//
//	// host frame loop
//	animation.StepTickers()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(Now().Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
