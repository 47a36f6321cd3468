package graphics

import (
	"math"
	"testing"
)

func circle(radius float64) *Path {
	p := NewPath()
	p.AddArc(Offset{X: radius, Y: radius}, radius, -math.Pi/2, 2*math.Pi)
	return p
}

func TestPathMeasureLength(t *testing.T) {
	line := NewPath()
	line.MoveTo(0, 0)
	line.LineTo(30, 40)
	if got := NewPathMeasure(line).Length(); got != 50 {
		t.Errorf("line length = %v, want 50", got)
	}

	square := NewPath()
	square.MoveTo(0, 0)
	square.LineTo(10, 0)
	square.LineTo(10, 10)
	square.LineTo(0, 10)
	square.Close()
	if got := NewPathMeasure(square).Length(); got != 40 {
		t.Errorf("closed square length = %v, want 40", got)
	}

	want := 2 * math.Pi * 90
	if got := NewPathMeasure(circle(90)).Length(); math.Abs(got-want)/want > 1e-3 {
		t.Errorf("circle length = %v, want about %v", got, want)
	}

	if got := NewPathMeasure(nil).Length(); got != 0 {
		t.Errorf("nil path length = %v", got)
	}
}

func TestExtractLine(t *testing.T) {
	line := NewPath()
	line.MoveTo(0, 0)
	line.LineTo(100, 0)
	part := NewPathMeasure(line).Extract(0.25, 0.5)

	start, _ := part.StartPoint()
	end, _ := part.EndPoint()
	if start != (Offset{X: 25}) || end != (Offset{X: 50}) {
		t.Errorf("extracted %v..%v, want 25..50", start, end)
	}
}

func TestExtractCircleQuarter(t *testing.T) {
	m := NewPathMeasure(circle(90))
	quarter := m.Extract(0, 0.25)

	end, ok := quarter.EndPoint()
	if !ok {
		t.Fatal("empty extraction")
	}
	// A clockwise circle starting at the top reaches the rightmost point
	// after a quarter turn.
	if d := end.Distance(Offset{X: 180, Y: 90}); d > 0.5 {
		t.Errorf("quarter ends at %v, %.3f from (180, 90)", end, d)
	}

	got := NewPathMeasure(quarter).Length()
	if want := m.Length() / 4; math.Abs(got-want) > 0.1 {
		t.Errorf("quarter length = %v, want %v", got, want)
	}
}

func TestExtractClampsAndEmpty(t *testing.T) {
	m := NewPathMeasure(circle(10))
	if p := m.Extract(0.5, 0.5); !p.IsEmpty() {
		t.Error("zero-length extraction should be empty")
	}
	if p := m.Extract(0.8, 0.2); !p.IsEmpty() {
		t.Error("reversed extraction should be empty")
	}
	full := m.Extract(-1, 2)
	if got := NewPathMeasure(full).Length(); math.Abs(got-m.Length()) > 1e-6 {
		t.Errorf("clamped extraction length = %v, want %v", got, m.Length())
	}
}

func TestExtractAcrossSubpaths(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(0, 10)
	p.LineTo(10, 10)

	part := NewPathMeasure(p).Extract(0.25, 0.75)
	moves := 0
	for _, cmd := range part.Commands {
		if cmd.Op == PathOpMoveTo {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("expected the gap between subpaths to be kept, got %d moves", moves)
	}
	end, _ := part.EndPoint()
	if end != (Offset{X: 5, Y: 10}) {
		t.Errorf("end = %v, want (5, 10)", end)
	}
}
