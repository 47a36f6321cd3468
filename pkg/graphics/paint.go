package graphics

import (
	"fmt"
	"strings"
)

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// ParseStrokeCap parses "butt", "round" or "square".
func ParseStrokeCap(s string) (StrokeCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "butt":
		return CapButt, nil
	case "round":
		return CapRound, nil
	case "square":
		return CapSquare, nil
	default:
		return CapButt, fmt.Errorf("unknown stroke cap %q", s)
	}
}

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// String returns a human-readable representation of the stroke join.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("StrokeJoin(%d)", int(j))
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels
	StrokeCap   StrokeCap  // How endpoints are drawn; 0 = CapButt
	StrokeJoin  StrokeJoin // How corners are drawn; 0 = JoinMiter
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		StrokeJoin:  JoinMiter,
	}
}

// StrokePaint returns a stroke paint with the given color and width.
func StrokePaint(color Color, width float64) Paint {
	p := DefaultPaint()
	p.Style = PaintStyleStroke
	p.Color = color
	p.StrokeWidth = width
	return p
}
