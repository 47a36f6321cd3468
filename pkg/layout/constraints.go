package layout

import (
	"math"

	"github.com/go-drift/progressring/pkg/graphics"
)

// Constraints describe the sizes a render box may take.
//
// Use [Tight] when the parent dictates an exact size and [Loose] when the
// child may be anything up to a maximum.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no maximum.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  min(max(size.Width, c.MinWidth), c.MaxWidth),
		Height: min(max(size.Height, c.MinHeight), c.MaxHeight),
	}
}

// Biggest returns the largest size that satisfies the constraints. Unbounded
// axes fall back to their minimum.
func (c Constraints) Biggest() graphics.Size {
	size := graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
	if !c.HasBoundedWidth() {
		size.Width = c.MinWidth
	}
	if !c.HasBoundedHeight() {
		size.Height = c.MinHeight
	}
	return size
}

// Smallest returns the smallest size that satisfies the constraints.
func (c Constraints) Smallest() graphics.Size {
	return graphics.Size{Width: c.MinWidth, Height: c.MinHeight}
}
