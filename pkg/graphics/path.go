package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for stroking or filling arbitrary shapes.
//
// Build paths using MoveTo, LineTo, CubicTo, AddArc and Close.
// Use with Canvas.DrawPath to stroke or fill.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// AddArc appends a circular arc centered at center, beginning at startAngle
// and sweeping by sweepAngle radians. Positive sweeps run clockwise in
// screen coordinates (y down). The arc starts a new subpath.
//
// The arc is approximated with cubic segments of at most 90 degrees each.
func (p *Path) AddArc(center Offset, radius, startAngle, sweepAngle float64) {
	p.MoveTo(center.X+radius*math.Cos(startAngle), center.Y+radius*math.Sin(startAngle))
	if sweepAngle == 0 {
		return
	}

	segments := int(math.Ceil(math.Abs(sweepAngle)/(math.Pi/2) - epsilon))
	if segments < 1 {
		segments = 1
	}
	step := sweepAngle / float64(segments)
	// k = (4/3) * tan(angle/4)
	k := (4.0 / 3.0) * math.Tan(step/4)

	current := startAngle
	for range segments {
		end := current + step
		cos1, sin1 := math.Cos(current), math.Sin(current)
		cos2, sin2 := math.Cos(end), math.Sin(end)

		x1 := center.X + radius*cos1
		y1 := center.Y + radius*sin1
		x2 := center.X + radius*cos2
		y2 := center.Y + radius*sin2

		p.CubicTo(
			x1-k*radius*sin1, y1+k*radius*cos1,
			x2+k*radius*sin2, y2-k*radius*cos2,
			x2, y2,
		)
		current = end
	}
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// Equal reports whether two paths contain the same commands, comparing
// coordinates with a small tolerance.
func (p *Path) Equal(other *Path) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() && other.IsEmpty()
	}
	if len(p.Commands) != len(other.Commands) {
		return false
	}
	for i, cmd := range p.Commands {
		o := other.Commands[i]
		if cmd.Op != o.Op || len(cmd.Args) != len(o.Args) {
			return false
		}
		for j := range cmd.Args {
			if !floatEqual(cmd.Args[j], o.Args[j]) {
				return false
			}
		}
	}
	return true
}

// StartPoint returns the first point of the path.
func (p *Path) StartPoint() (Offset, bool) {
	if p.IsEmpty() {
		return Offset{}, false
	}
	args := p.Commands[0].Args
	if len(args) < 2 {
		return Offset{}, false
	}
	return Offset{X: args[0], Y: args[1]}, true
}

// EndPoint returns the last on-curve point of the path.
func (p *Path) EndPoint() (Offset, bool) {
	if p.IsEmpty() {
		return Offset{}, false
	}
	for i := len(p.Commands) - 1; i >= 0; i-- {
		args := p.Commands[i].Args
		if n := len(args); n >= 2 {
			return Offset{X: args[n-2], Y: args[n-1]}, true
		}
	}
	return Offset{}, false
}
