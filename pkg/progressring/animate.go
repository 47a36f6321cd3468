package progressring

import (
	"fmt"
	"time"

	"github.com/go-drift/progressring/pkg/animation"
)

// FillMode decides what the ring shows after an animation completes.
type FillMode int

const (
	// FillForwards keeps showing the animation's end value until the next
	// SetProgress or Animate call.
	FillForwards FillMode = iota
	// FillRemoved drops the animation on completion so the ring shows its
	// stored progress again.
	FillRemoved
)

func (m FillMode) String() string {
	switch m {
	case FillForwards:
		return "forwards"
	case FillRemoved:
		return "removed"
	default:
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
}

// AnimationState is the lifecycle of a StrokeAnimation.
type AnimationState int

const (
	AnimationIdle AnimationState = iota
	AnimationRunning
	AnimationCompleted
)

func (s AnimationState) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationRunning:
		return "running"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationState(%d)", int(s))
	}
}

// AnimationObserver is notified when a stroke animation starts and stops.
type AnimationObserver interface {
	AnimationDidStart(a *StrokeAnimation)
	AnimationDidStop(a *StrokeAnimation, finished bool)
}

// ObserverFuncs adapts plain functions to AnimationObserver. Nil fields are
// skipped.
type ObserverFuncs struct {
	OnStart func(a *StrokeAnimation)
	OnStop  func(a *StrokeAnimation, finished bool)
}

func (o ObserverFuncs) AnimationDidStart(a *StrokeAnimation) {
	if o.OnStart != nil {
		o.OnStart(a)
	}
}

func (o ObserverFuncs) AnimationDidStop(a *StrokeAnimation, finished bool) {
	if o.OnStop != nil {
		o.OnStop(a, finished)
	}
}

// AnimationSpec describes one interpolation of the progress ring's drawn
// stroke end.
type AnimationSpec struct {
	From     float64
	To       float64
	Duration time.Duration

	// FillMode defaults to FillForwards.
	FillMode FillMode

	// Observer is optional.
	Observer AnimationObserver

	// Curve eases the interpolation. Nil means linear.
	Curve func(float64) float64
}

// StrokeAnimation is a running or finished interpolation attached to a
// ring's progress layer.
type StrokeAnimation struct {
	spec       AnimationSpec
	layer      *StrokeLayer
	ring       *RingView
	controller *animation.AnimationController
	tween      *animation.Tween[float64]
	state      AnimationState
}

func newStrokeAnimation(ring *RingView, spec AnimationSpec) *StrokeAnimation {
	a := &StrokeAnimation{
		spec:  spec,
		layer: ring.progressLayer,
		ring:  ring,
		tween: animation.TweenFloat64(spec.From, spec.To),
	}
	a.controller = animation.NewAnimationController(spec.Duration)
	if spec.Curve != nil {
		a.controller.Curve = spec.Curve
	}
	a.controller.AddListener(func() {
		a.ring.MarkNeedsPaint()
	})
	a.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			a.finish()
		}
	})
	return a
}

func (a *StrokeAnimation) start() {
	a.state = AnimationRunning
	a.layer.attach(a)
	a.ring.MarkNeedsPaint()
	if a.spec.Observer != nil {
		a.spec.Observer.AnimationDidStart(a)
	}
	a.controller.Forward()
}

func (a *StrokeAnimation) finish() {
	if a.state == AnimationCompleted {
		return
	}
	a.state = AnimationCompleted
	a.controller.Dispose()
	if a.spec.FillMode == FillRemoved {
		a.layer.detach(a)
	}
	a.ring.MarkNeedsPaint()
	if a.spec.Observer != nil {
		a.spec.Observer.AnimationDidStop(a, true)
	}
}

// holdsPresentation reports whether the animation currently decides the
// drawn stroke end.
func (a *StrokeAnimation) holdsPresentation() bool {
	switch a.state {
	case AnimationRunning:
		return true
	case AnimationCompleted:
		return a.spec.FillMode == FillForwards
	default:
		return false
	}
}

// Value returns the interpolated stroke end. Before the first tick it is
// From; once completed it is To.
func (a *StrokeAnimation) Value() float64 {
	if a.state == AnimationCompleted {
		return a.spec.To
	}
	return a.tween.Transform(a.controller)
}

// State returns the animation lifecycle state.
func (a *StrokeAnimation) State() AnimationState {
	return a.state
}

// Spec returns the spec the animation was started with.
func (a *StrokeAnimation) Spec() AnimationSpec {
	return a.spec
}

// IsRunning reports whether the animation is still interpolating.
func (a *StrokeAnimation) IsRunning() bool {
	return a.state == AnimationRunning
}
