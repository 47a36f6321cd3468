package progressring

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/progressring/pkg/graphics"
)

// Direction is the way the ring sweeps from its 12 o'clock start.
type Direction int

const (
	// Clockwise sweeps to the right from the top.
	Clockwise Direction = iota
	// CounterClockwise sweeps to the left from the top.
	CounterClockwise
)

// String returns the lowercase name used in configuration files.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "clockwise" or "counterclockwise" (also "cw"/"ccw").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clockwise", "cw":
		return Clockwise, nil
	case "counterclockwise", "counter-clockwise", "ccw":
		return CounterClockwise, nil
	default:
		return Clockwise, fmt.Errorf("unknown direction %q", s)
	}
}

// startAngle is 12 o'clock in screen coordinates (y grows downward).
const startAngle = 3 * math.Pi / 2

// Radius returns the stroke centerline radius for a view of the given size.
// The result is negative when strokeWidth exceeds the shorter side.
func Radius(size graphics.Size, strokeWidth float64) float64 {
	return (size.ShortestSide() - strokeWidth) / 2
}

// Center returns the center point of a view of the given size.
func Center(size graphics.Size) graphics.Offset {
	return size.Center()
}

// CirclePath returns a full circle starting at 12 o'clock and sweeping one
// turn in the given direction.
func CirclePath(center graphics.Offset, radius float64, direction Direction) *graphics.Path {
	sweep := 2 * math.Pi
	if direction == CounterClockwise {
		sweep = -sweep
	}
	path := graphics.NewPath()
	path.AddArc(center, radius, startAngle, sweep)
	return path
}

// ContainerSide returns the side of the largest square inscribed in the
// inner edge of a ring with the given centerline radius and stroke width.
func ContainerSide(radius, strokeWidth float64) float64 {
	inner := radius - strokeWidth/2
	return math.Sqrt(2 * inner * inner)
}

// TrimPath returns the part of path between the start and end fractions of
// its length. Fractions are clamped to [0, 1].
func TrimPath(path *graphics.Path, start, end float64) *graphics.Path {
	return graphics.NewPathMeasure(path).Extract(start, end)
}
