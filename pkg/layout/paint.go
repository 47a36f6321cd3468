package layout

import "github.com/go-drift/progressring/pkg/graphics"

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}
