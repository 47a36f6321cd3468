package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is the lifecycle state of an [AnimationController].
//
//	Dismissed --Forward()--> Forward --duration elapsed--> Completed
//
// Stop leaves a running controller where it is; it never reaches Completed.
type AnimationStatus int

const (
	// AnimationDismissed means Forward has not been called yet.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the value is moving toward 1.
	AnimationForward
	// AnimationCompleted means the value reached 1.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController moves Value from where it stands to 1 over Duration,
// shaped by Curve. Map the value onto other ranges with a [Tween].
//
// Frames come from the shared ticker registry, so nothing moves until the
// host calls [StepTickers]. A non-positive Duration jumps to 1 inside
// Forward, firing the value and status listeners synchronously.
//
// Call Dispose when done.
type AnimationController struct {
	// Value is the current position, between 0 and 1.
	Value float64

	Duration time.Duration

	// Curve eases linear progress. Nil means linear.
	Curve func(float64) float64

	status          AnimationStatus
	ticker          *Ticker
	from            float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextID          int
}

// NewAnimationController creates a dismissed controller at 0.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward starts moving toward 1 from the current value, restarting the
// clock if the controller was already running.
func (c *AnimationController) Forward() {
	c.Stop()
	c.from = c.Value
	c.setStatus(AnimationForward)

	if c.Duration <= 0 {
		c.advance(1)
		return
	}
	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.advance(min(float64(elapsed)/float64(c.Duration), 1))
	})
	c.ticker.Start()
}

func (c *AnimationController) advance(progress float64) {
	eased := progress
	if c.Curve != nil && progress < 1 {
		eased = c.Curve(progress)
	}
	c.Value = c.from + (1-c.from)*eased
	c.notifyListeners()

	if progress >= 1 {
		c.Stop()
		c.setStatus(AnimationCompleted)
	}
}

// Stop halts the animation at its current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether a ticker is driving the value.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil
}

func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// AddListener registers fn to run on every value change and returns a
// function that removes it.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// AddStatusListener registers fn to run on every status change and returns
// a function that removes it.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextID
	c.nextID++
	c.statusListeners[id] = fn
	return func() { delete(c.statusListeners, id) }
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, fn := range c.statusListeners {
		fn(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, fn := range c.listeners {
		fn()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
