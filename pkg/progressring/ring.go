package progressring

import (
	"math"

	"github.com/go-drift/progressring/pkg/errors"
	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
)

// RingView is a render box that draws a background ring, a progress ring
// trimmed to the current progress, and an optional centered child.
//
// The view takes the biggest size its constraints allow; callers supply
// the size explicitly, typically with tight constraints.
type RingView struct {
	layout.RenderBoxBase

	strokeWidth float64
	direction   Direction
	progress    float64

	backgroundLayer *StrokeLayer
	progressLayer   *StrokeLayer
	center          centerContainer
	radius          float64
}

// New creates a ring with the given style. The stroke width must be positive
// and finite.
func New(style Style) (*RingView, error) {
	if style.StrokeWidth <= 0 || math.IsNaN(style.StrokeWidth) || math.IsInf(style.StrokeWidth, 0) {
		return nil, errors.New("progressring.New", errors.KindConfig,
			"stroke width must be positive and finite, got %v", style.StrokeWidth)
	}
	r := &RingView{
		strokeWidth: style.StrokeWidth,
		direction:   style.Direction,
		backgroundLayer: &StrokeLayer{
			LineWidth:   style.StrokeWidth,
			StrokeColor: style.BackgroundRingColor,
			LineCap:     style.LineCap,
			StrokeEnd:   1,
		},
		progressLayer: &StrokeLayer{
			LineWidth:   style.StrokeWidth,
			StrokeColor: style.RingColor,
			LineCap:     style.LineCap,
		},
	}
	r.SetSelf(r)
	return r, nil
}

// StrokeWidth returns the width of both rings.
func (r *RingView) StrokeWidth() float64 {
	return r.strokeWidth
}

// SetStrokeWidth changes the width of both rings. The radius and the center
// container depend on it, so the ring is laid out again.
func (r *RingView) SetStrokeWidth(width float64) {
	if width == r.strokeWidth {
		return
	}
	r.strokeWidth = width
	r.backgroundLayer.LineWidth = width
	r.progressLayer.LineWidth = width
	r.applyGeometry()
	r.MarkNeedsLayout()
	r.MarkNeedsPaint()
}

// Progress returns the stored progress exactly as last set.
func (r *RingView) Progress() float64 {
	return r.progress
}

// SetProgress stores p and updates the progress ring's stroke end. Values
// outside [0, 1] are stored unchanged and clamped only when drawing. A
// completed forward-filled animation stops holding the drawn value.
func (r *RingView) SetProgress(p float64) {
	r.progress = p
	r.progressLayer.StrokeEnd = p
	r.progressLayer.detachCompleted()
	r.MarkNeedsPaint()
}

// PresentationProgress returns the stroke end currently drawn, which differs
// from Progress while an animation runs or holds its end value.
func (r *RingView) PresentationProgress() float64 {
	return r.progressLayer.PresentationStrokeEnd()
}

// RingColor returns the progress ring color.
func (r *RingView) RingColor() graphics.Color {
	return r.progressLayer.StrokeColor
}

// SetRingColor sets the progress ring color.
func (r *RingView) SetRingColor(c graphics.Color) {
	if r.progressLayer.StrokeColor == c {
		return
	}
	r.progressLayer.StrokeColor = c
	r.MarkNeedsPaint()
}

// BackgroundRingColor returns the background ring color.
func (r *RingView) BackgroundRingColor() graphics.Color {
	return r.backgroundLayer.StrokeColor
}

// SetBackgroundRingColor sets the background ring color.
func (r *RingView) SetBackgroundRingColor(c graphics.Color) {
	if r.backgroundLayer.StrokeColor == c {
		return
	}
	r.backgroundLayer.StrokeColor = c
	r.MarkNeedsPaint()
}

// Direction returns the sweep direction.
func (r *RingView) Direction() Direction {
	return r.direction
}

// SetDirection changes the sweep direction of both rings.
func (r *RingView) SetDirection(d Direction) {
	if d == r.direction {
		return
	}
	r.direction = d
	r.updatePaths()
	r.MarkNeedsPaint()
}

// BackgroundLayer returns the full background ring layer.
func (r *RingView) BackgroundLayer() *StrokeLayer {
	return r.backgroundLayer
}

// ProgressLayer returns the trimmed progress ring layer.
func (r *RingView) ProgressLayer() *StrokeLayer {
	return r.progressLayer
}

// Animate starts interpolating the drawn stroke end from spec.From to
// spec.To. Progress is not changed. A non-positive duration applies To at
// once and reports start and stop to the observer before returning.
//
// Earlier animations keep running; the most recently started one decides
// what is drawn.
func (r *RingView) Animate(spec AnimationSpec) *StrokeAnimation {
	r.progressLayer.detachCompleted()
	a := newStrokeAnimation(r, spec)
	a.start()
	return a
}

// PlaceCentered pins child to the square inscribed in the ring and returns
// the child it replaces, if any. Passing nil removes the current child.
func (r *RingView) PlaceCentered(child layout.RenderBox) layout.RenderBox {
	prev := r.center.child
	if prev == child {
		return nil
	}
	if prev != nil {
		layout.SetParentOnChild(prev, nil)
	}
	r.center.child = child
	if child != nil {
		layout.SetParentOnChild(child, r)
		if owner := r.Owner(); owner != nil {
			child.SetOwner(owner)
		}
		r.center.layoutChild()
	}
	r.MarkNeedsLayout()
	r.MarkNeedsPaint()
	return prev
}

// SetOwner attaches the ring and its child to a pipeline owner.
func (r *RingView) SetOwner(owner *layout.PipelineOwner) {
	r.RenderBoxBase.SetOwner(owner)
	if r.center.child != nil {
		r.center.child.SetOwner(owner)
	}
}

// Child returns the centered child, if any.
func (r *RingView) Child() layout.RenderBox {
	return r.center.child
}

// VisitChildren calls visitor for the centered child.
func (r *RingView) VisitChildren(visitor func(layout.RenderObject)) {
	if r.center.child != nil {
		visitor(r.center.child)
	}
}

// PerformLayout sizes the ring to its constraints and repositions both
// rings and the center container.
func (r *RingView) PerformLayout() {
	r.SetSize(r.Constraints().Biggest())
	r.applyGeometry()
}

// applyGeometry derives the radius, both ring paths and the center
// container from the current size and stroke width.
func (r *RingView) applyGeometry() {
	size := r.Size()
	r.radius = Radius(size, r.strokeWidth)
	r.updatePaths()
	if r.center.frame == nil && r.NeedsLayout() {
		return
	}
	r.center.update(size, r.radius, r.strokeWidth)
	r.center.layoutChild()
}

func (r *RingView) updatePaths() {
	size := r.Size()
	path := CirclePath(Center(size), r.radius, r.direction)
	r.backgroundLayer.Path = path
	r.progressLayer.Path = path.Clone()
}

// Paint draws the background ring, the progress ring up to its presentation
// stroke end, then the centered child.
func (r *RingView) Paint(ctx *layout.PaintContext) {
	r.backgroundLayer.Paint(ctx.Canvas, r.backgroundLayer.StrokeEnd)
	r.progressLayer.Paint(ctx.Canvas, r.PresentationProgress())
	if r.center.child != nil {
		r.paintChild(ctx)
	}
}

// paintChild paints the centered child. A panicking child is reported and
// skipped so the ring itself still draws.
func (r *RingView) paintChild(ctx *layout.PaintContext) {
	offset := r.center.childOffset()
	ctx.Canvas.Save()
	defer ctx.Canvas.Restore()
	defer errors.Recover("progressring.Paint")
	ctx.Canvas.Translate(offset.X, offset.Y)
	r.center.child.Paint(ctx)
}

// HitTest forwards to the centered child. The rings themselves are never a
// hit target.
func (r *RingView) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) || r.center.child == nil {
		return false
	}
	offset := r.center.childOffset()
	local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
	return r.center.child.HitTest(local, result)
}

// Geometry describes the ring as laid out.
type Geometry struct {
	Size      graphics.Size
	Center    graphics.Offset
	Radius    float64
	Container graphics.Rect
}

// Geometry returns the result of the last layout pass. Container is the
// zero rect before the first layout.
func (r *RingView) Geometry() Geometry {
	return Geometry{
		Size:      r.Size(),
		Center:    Center(r.Size()),
		Radius:    r.radius,
		Container: r.center.rect(),
	}
}
