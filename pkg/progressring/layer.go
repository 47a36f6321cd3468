package progressring

import (
	"math"

	"github.com/go-drift/progressring/pkg/graphics"
)

// StrokeLayer is a stroked circular path with a trimmable end.
//
// StrokeEnd is the model value set through the ring's setters. Attached
// animations may override it for drawing; PresentationStrokeEnd reports the
// value actually drawn.
type StrokeLayer struct {
	Path        *graphics.Path
	LineWidth   float64
	StrokeColor graphics.Color
	LineCap     graphics.StrokeCap
	StrokeEnd   float64

	// animations in start order; the newest active one wins.
	animations []*StrokeAnimation
}

// PresentationStrokeEnd returns the stroke end currently on screen.
func (l *StrokeLayer) PresentationStrokeEnd() float64 {
	for i := len(l.animations) - 1; i >= 0; i-- {
		if a := l.animations[i]; a.holdsPresentation() {
			return a.Value()
		}
	}
	return l.StrokeEnd
}

// Animations returns the animations attached to the layer, oldest first.
func (l *StrokeLayer) Animations() []*StrokeAnimation {
	out := make([]*StrokeAnimation, len(l.animations))
	copy(out, l.animations)
	return out
}

func (l *StrokeLayer) attach(a *StrokeAnimation) {
	l.animations = append(l.animations, a)
}

func (l *StrokeLayer) detach(a *StrokeAnimation) {
	for i, existing := range l.animations {
		if existing == a {
			l.animations = append(l.animations[:i], l.animations[i+1:]...)
			return
		}
	}
}

// detachCompleted drops animations that have finished, releasing any
// forward-filled presentation value.
func (l *StrokeLayer) detachCompleted() bool {
	kept := l.animations[:0]
	for _, a := range l.animations {
		if a.State() != AnimationCompleted {
			kept = append(kept, a)
		}
	}
	changed := len(kept) != len(l.animations)
	clear(l.animations[len(kept):])
	l.animations = kept
	return changed
}

func (l *StrokeLayer) paint() graphics.Paint {
	p := graphics.StrokePaint(l.StrokeColor, l.LineWidth)
	p.StrokeCap = l.LineCap
	p.StrokeJoin = graphics.JoinRound
	return p
}

// Paint strokes the layer's path from its start to end. The end fraction
// is clamped to [0, 1]; nothing is drawn at 0 or NaN.
func (l *StrokeLayer) Paint(canvas graphics.Canvas, end float64) {
	if l.Path.IsEmpty() || l.LineWidth <= 0 {
		return
	}
	switch {
	case end <= 0 || math.IsNaN(end):
		return
	case end >= 1:
		canvas.DrawPath(l.Path, l.paint())
	default:
		canvas.DrawPath(TrimPath(l.Path, 0, end), l.paint())
	}
}
