package layout

import "github.com/go-drift/progressring/pkg/graphics"

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides base behavior for render boxes.
type RenderBoxBase struct {
	size             graphics.Size
	parentData       any
	owner            *PipelineOwner
	self             RenderObject
	parent           RenderObject // parent reference for tree walking
	depth            int          // tree depth (root = 0)
	relayoutBoundary RenderObject // cached nearest relayout boundary
	needsLayout      bool         // local dirty flag
	constraints      Constraints  // last received constraints
	needsPaint       bool         // local dirty flag for paint
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size.
// If the size changes, marks paint as dirty since the render object's content
// needs to be re-recorded at the new size.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
// If the offset in BoxParentData changes, the parent is marked for repaint.
func (r *RenderBoxBase) SetParentData(data any) {
	if newData, ok := data.(*BoxParentData); ok {
		oldData, hadOldData := r.parentData.(*BoxParentData)
		needsParentRepaint := !hadOldData || oldData.Offset != newData.Offset
		if needsParentRepaint && r.parent != nil {
			r.parent.MarkNeedsPaint()
		}
	}
	r.parentData = data
}

// MarkNeedsLayout marks this render box as needing layout.
//
// When a node needs layout, we walk up the tree marking each node until we
// reach a relayout boundary. The boundary then gets scheduled for layout.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true

	if r.self == nil {
		return
	}

	if r.owner != nil && r.relayoutBoundary == r.self {
		r.owner.ScheduleLayout(r.self)
		return
	}

	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}

	// No parent and not a boundary: likely initial setup before the tree is
	// connected.
	if r.owner != nil {
		r.owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint marks this render box as needing paint and walks up to the
// root, which gets scheduled with the owner.
//
// Unlike MarkNeedsLayout, we don't early-return when needsPaint is true:
// SetSelf pre-sets needsPaint without scheduling, and SchedulePaint
// deduplicates.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true

	if r.parent != nil {
		r.parent.MarkNeedsPaint()
		return
	}
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// Owner returns the pipeline owner, if any.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true // New render objects always need initial layout
	r.needsPaint = true  // New render objects always need initial paint
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and computes depth.
// Clears relayoutBoundary and constraints to prevent stale references
// when the object is reparented to a different subtree.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	oldParent := r.parent
	r.parent = parent
	if parent == nil {
		r.depth = 0
	} else if getter, ok := parent.(interface{ Depth() int }); ok {
		r.depth = getter.Depth() + 1
	} else {
		r.depth = 1
	}
	r.relayoutBoundary = nil
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true

	if oldParent != nil {
		oldParent.MarkNeedsPaint()
	}
	if parent != nil {
		parent.MarkNeedsPaint()
	}
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// RelayoutBoundary returns the cached nearest relayout boundary.
func (r *RenderBoxBase) RelayoutBoundary() RenderObject {
	return r.relayoutBoundary
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// NeedsPaint returns true if this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// Layout handles boundary determination and delegates to PerformLayout.
//
// A node becomes a relayout boundary when:
//   - It receives tight constraints (parent dictates exact size)
//   - It is the root (no parent)
//   - Parent doesn't use our size (parentUsesSize=false)
//
// Render objects implement PerformLayout() for their specific layout logic.
// The base Layout() skips the work when the node is clean and the
// constraints are unchanged.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	shouldBeBoundary := constraints.IsTight() || r.parent == nil || !parentUsesSize

	if shouldBeBoundary {
		r.relayoutBoundary = r.self
	} else if r.parent != nil {
		if getter, ok := r.parent.(interface{ RelayoutBoundary() RenderObject }); ok {
			r.relayoutBoundary = getter.RelayoutBoundary()
		}
	}

	if !r.needsLayout && r.constraints == constraints {
		return
	}

	// Clear the dirty flag before performing layout so a child marking us
	// dirty again is caught on the next flush.
	r.constraints = constraints
	r.needsLayout = false

	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild sets the parent reference on a child render object.
// It marks both the old and new parent as needing layout when the parent changes.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	getter, _ := child.(interface{ Parent() RenderObject })
	setter, ok := child.(interface{ SetParent(RenderObject) })
	if !ok {
		return
	}
	currentParent := RenderObject(nil)
	if getter != nil {
		currentParent = getter.Parent()
	}
	if currentParent == parent {
		return
	}
	setter.SetParent(parent)
	if currentParent != nil {
		currentParent.MarkNeedsLayout()
	}
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}
