package graphics

import (
	"math"
	"sort"
)

// samplesPerCurve is the number of chords used to approximate the length of
// each cubic segment.
const samplesPerCurve = 32

// PathMeasure computes arc length along a path and extracts sub-paths by
// length fraction. It mirrors a shape layer's strokeStart/strokeEnd trimming.
type PathMeasure struct {
	segments []measuredSegment
	length   float64
}

type measuredSegment struct {
	move   bool      // starts a new subpath
	points []Offset  // 2 points for lines, 4 for cubics
	table  []float64 // cumulative length at each sample (cubics only)
	start  float64   // cumulative path length at segment start
	length float64
}

// NewPathMeasure measures the given path.
func NewPathMeasure(path *Path) *PathMeasure {
	m := &PathMeasure{}
	if path.IsEmpty() {
		return m
	}

	var current, subpathStart Offset
	pendingMove := false
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			current = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			subpathStart = current
			pendingMove = true
		case PathOpLineTo:
			next := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			m.addLine(current, next, pendingMove)
			pendingMove = false
			current = next
		case PathOpCubicTo:
			pts := []Offset{
				current,
				{X: cmd.Args[0], Y: cmd.Args[1]},
				{X: cmd.Args[2], Y: cmd.Args[3]},
				{X: cmd.Args[4], Y: cmd.Args[5]},
			}
			m.addCubic(pts, pendingMove)
			pendingMove = false
			current = pts[3]
		case PathOpClose:
			m.addLine(current, subpathStart, pendingMove)
			pendingMove = false
			current = subpathStart
		}
	}
	return m
}

func (m *PathMeasure) addLine(from, to Offset, move bool) {
	length := from.Distance(to)
	m.segments = append(m.segments, measuredSegment{
		move:   move,
		points: []Offset{from, to},
		start:  m.length,
		length: length,
	})
	m.length += length
}

func (m *PathMeasure) addCubic(pts []Offset, move bool) {
	table := make([]float64, samplesPerCurve+1)
	prev := pts[0]
	for i := 1; i <= samplesPerCurve; i++ {
		p := cubicPoint(pts, float64(i)/samplesPerCurve)
		table[i] = table[i-1] + prev.Distance(p)
		prev = p
	}
	length := table[samplesPerCurve]
	m.segments = append(m.segments, measuredSegment{
		move:   move,
		points: pts,
		table:  table,
		start:  m.length,
		length: length,
	})
	m.length += length
}

// Length returns the total length of the path.
func (m *PathMeasure) Length() float64 {
	return m.length
}

// Extract returns the portion of the path between the start and end
// fractions of its total length. Fractions are clamped to [0, 1]; an empty
// path is returned when end <= start.
func (m *PathMeasure) Extract(startFraction, endFraction float64) *Path {
	out := NewPath()
	startFraction = clamp01(startFraction)
	endFraction = clamp01(endFraction)
	if endFraction <= startFraction || m.length == 0 {
		return out
	}

	from := startFraction * m.length
	to := endFraction * m.length
	needMove := true
	for _, seg := range m.segments {
		segEnd := seg.start + seg.length
		if segEnd <= from || seg.start >= to || seg.length == 0 {
			continue
		}
		if seg.move && seg.start > from {
			needMove = true
		}

		t0 := seg.paramAt(math.Max(from-seg.start, 0))
		t1 := seg.paramAt(math.Min(to-seg.start, seg.length))

		if len(seg.points) == 2 {
			a := lerpOffset(seg.points[0], seg.points[1], t0)
			b := lerpOffset(seg.points[0], seg.points[1], t1)
			if needMove {
				out.MoveTo(a.X, a.Y)
				needMove = false
			}
			out.LineTo(b.X, b.Y)
			continue
		}

		sub := subCubic(seg.points, t0, t1)
		if needMove {
			out.MoveTo(sub[0].X, sub[0].Y)
			needMove = false
		}
		out.CubicTo(sub[1].X, sub[1].Y, sub[2].X, sub[2].Y, sub[3].X, sub[3].Y)
	}
	return out
}

// paramAt maps a distance along the segment to its curve parameter.
func (s measuredSegment) paramAt(distance float64) float64 {
	if s.length == 0 {
		return 0
	}
	if s.table == nil {
		return distance / s.length
	}
	i := sort.SearchFloat64s(s.table, distance)
	if i <= 0 {
		return 0
	}
	if i > samplesPerCurve {
		return 1
	}
	lo, hi := s.table[i-1], s.table[i]
	frac := 0.0
	if hi > lo {
		frac = (distance - lo) / (hi - lo)
	}
	return (float64(i-1) + frac) / samplesPerCurve
}

func cubicPoint(p []Offset, t float64) Offset {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Offset{
		X: a*p[0].X + b*p[1].X + c*p[2].X + d*p[3].X,
		Y: a*p[0].Y + b*p[1].Y + c*p[2].Y + d*p[3].Y,
	}
}

func lerpOffset(a, b Offset, t float64) Offset {
	return Offset{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// splitCubic splits a cubic at t using de Casteljau and returns both halves.
func splitCubic(p []Offset, t float64) (left, right []Offset) {
	p01 := lerpOffset(p[0], p[1], t)
	p12 := lerpOffset(p[1], p[2], t)
	p23 := lerpOffset(p[2], p[3], t)
	p012 := lerpOffset(p01, p12, t)
	p123 := lerpOffset(p12, p23, t)
	mid := lerpOffset(p012, p123, t)
	return []Offset{p[0], p01, p012, mid}, []Offset{mid, p123, p23, p[3]}
}

// subCubic returns the part of the cubic between parameters t0 and t1.
func subCubic(p []Offset, t0, t1 float64) []Offset {
	if t0 <= 0 && t1 >= 1 {
		return p
	}
	head, _ := splitCubic(p, t1)
	if t0 <= 0 || t1 == 0 {
		return head
	}
	_, tail := splitCubic(head, t0/t1)
	return tail
}
