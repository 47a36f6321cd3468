package widgets

import (
	"math"

	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
)

// Center fills the available space with a background color and positions
// its child at the center.
//
// The child is laid out at ChildSize when that size is non-zero, clamped to
// the space available; otherwise it receives loose constraints and sizes
// itself.
type Center struct {
	layout.RenderBoxBase
	child      layout.RenderBox
	childSize  graphics.Size
	background graphics.Color
}

// NewCenter creates a center box around child.
func NewCenter(child layout.RenderBox, childSize graphics.Size, background graphics.Color) *Center {
	c := &Center{childSize: childSize, background: background}
	c.SetSelf(c)
	c.SetChild(child)
	return c
}

// SetChild replaces the centered child.
func (c *Center) SetChild(child layout.RenderBox) {
	layout.SetParentOnChild(c.child, nil)
	c.child = child
	if child != nil {
		child.SetOwner(c.Owner())
	}
	layout.SetParentOnChild(child, c)
}

// Child returns the centered child, if any.
func (c *Center) Child() layout.RenderBox {
	return c.child
}

// SetBackground changes the fill color. Only paint is invalidated.
func (c *Center) SetBackground(color graphics.Color) {
	if c.background == color {
		return
	}
	c.background = color
	c.MarkNeedsPaint()
}

// SetOwner assigns the pipeline owner to this box and its child.
func (c *Center) SetOwner(owner *layout.PipelineOwner) {
	c.RenderBoxBase.SetOwner(owner)
	if c.child != nil {
		c.child.SetOwner(owner)
	}
}

func (c *Center) VisitChildren(visitor func(layout.RenderObject)) {
	if c.child != nil {
		visitor(c.child)
	}
}

func (c *Center) PerformLayout() {
	constraints := c.Constraints()

	// Unbounded axes shrink to the requested child size.
	target := constraints.Biggest()
	if !constraints.HasBoundedWidth() {
		target.Width = c.childSize.Width
	}
	if !constraints.HasBoundedHeight() {
		target.Height = c.childSize.Height
	}
	size := constraints.Constrain(target)
	c.SetSize(size)

	if c.child == nil {
		return
	}
	if c.childSize.Width > 0 && c.childSize.Height > 0 {
		c.child.Layout(layout.Tight(graphics.Size{
			Width:  math.Min(c.childSize.Width, size.Width),
			Height: math.Min(c.childSize.Height, size.Height),
		}), true)
	} else {
		c.child.Layout(layout.Loose(size), true)
	}
	childSize := c.child.Size()
	c.child.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{
		X: (size.Width - childSize.Width) / 2,
		Y: (size.Height - childSize.Height) / 2,
	}})
}

func (c *Center) Paint(ctx *layout.PaintContext) {
	size := c.Size()
	if c.background.Alpha() > 0 {
		ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.Paint{
			Color: c.background,
			Style: graphics.PaintStyleFill,
		})
	}
	if c.child != nil {
		ctx.PaintChild(c.child, childOffset(c.child))
	}
}

func (c *Center) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, c.Size()) {
		return false
	}
	if c.child != nil {
		offset := childOffset(c.child)
		local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
		if c.child.HitTest(local, result) {
			return true
		}
	}
	result.Add(c)
	return true
}

func childOffset(child layout.RenderObject) graphics.Offset {
	if data, ok := child.ParentData().(*layout.BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}
