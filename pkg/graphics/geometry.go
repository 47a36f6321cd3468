package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Translate returns the offset moved by (dx, dy).
func (o Offset) Translate(dx, dy float64) Offset {
	return Offset{X: o.X + dx, Y: o.Y + dy}
}

// Distance returns the euclidean distance between two offsets.
func (o Offset) Distance(other Offset) float64 {
	return math.Hypot(other.X-o.X, other.Y-o.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// ShortestSide returns min(Width, Height).
func (s Size) ShortestSide() float64 {
	return math.Min(s.Width, s.Height)
}

// Center returns the midpoint of a box of this size anchored at the origin.
func (s Size) Center() Offset {
	return Offset{X: s.Width / 2, Y: s.Height / 2}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromCenter constructs a Rect of the given size centered on center.
func RectFromCenter(center Offset, width, height float64) Rect {
	return RectFromLTWH(center.X-width/2, center.Y-height/2, width, height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether p lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
