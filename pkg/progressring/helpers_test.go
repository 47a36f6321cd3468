package progressring_test

import (
	"math"
	"testing"

	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
	"github.com/go-drift/progressring/pkg/progressring"
)

const tolerance = 0.5

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func newRing(t *testing.T, size float64) *progressring.RingView {
	t.Helper()
	ring, err := progressring.New(progressring.DefaultStyle())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ring.Layout(layout.Tight(graphics.Size{Width: size, Height: size}), false)
	return ring
}

// box fills whatever tight constraints it receives.
type box struct {
	layout.RenderBoxBase
	painted int
}

func newBox() *box {
	b := &box{}
	b.SetSelf(b)
	return b
}

func (b *box) PerformLayout() {
	b.SetSize(b.Constraints().Biggest())
}

func (b *box) Paint(ctx *layout.PaintContext) {
	b.painted++
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, b.Size().Width, b.Size().Height), graphics.DefaultPaint())
}

func (b *box) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, b.Size()) {
		return false
	}
	result.Add(b)
	return true
}

type panicBox struct {
	box
}

func newPanicBox() *panicBox {
	b := &panicBox{}
	b.SetSelf(b)
	return b
}

func (b *panicBox) Paint(ctx *layout.PaintContext) {
	ctx.Canvas.Translate(1000, 1000)
	panic("child exploded")
}
