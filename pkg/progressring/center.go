package progressring

import (
	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
)

// containerFrame is the centered square the child is pinned to. It is
// created on the first layout pass and updated in place afterwards.
type containerFrame struct {
	rect graphics.Rect
}

// centerContainer holds at most one child inscribed in the ring.
type centerContainer struct {
	frame *containerFrame
	child layout.RenderBox
}

// update recomputes the container square for a view of the given size.
func (c *centerContainer) update(size graphics.Size, radius, strokeWidth float64) {
	side := max(ContainerSide(radius, strokeWidth), 0)
	if c.frame == nil {
		c.frame = &containerFrame{}
	}
	c.frame.rect = graphics.RectFromCenter(Center(size), side, side)
}

// layoutChild fills the container with the child.
func (c *centerContainer) layoutChild() {
	if c.child == nil || c.frame == nil {
		return
	}
	c.child.Layout(layout.Tight(c.frame.rect.Size()), false)
	c.child.SetParentData(&layout.BoxParentData{Offset: c.frame.rect.TopLeft()})
}

func (c *centerContainer) rect() graphics.Rect {
	if c.frame == nil {
		return graphics.Rect{}
	}
	return c.frame.rect
}

func (c *centerContainer) childOffset() graphics.Offset {
	if c.child == nil {
		return graphics.Offset{}
	}
	if pd, ok := c.child.ParentData().(*layout.BoxParentData); ok {
		return pd.Offset
	}
	return c.rect().TopLeft()
}
