package garland

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Span is an angular interval [Start, End) in radians. Spans are immutable
// values; generators consume them and never mutate them.
type Span struct {
	Start, End float64
}

// Width returns End - Start.
func (s Span) Width() float64 {
	return s.End - s.Start
}

// ArcSpan is a Span plus a winding direction.
type ArcSpan struct {
	Span
	Clockwise bool
}

// SegmentOp tags one drawing command in a Path.
type SegmentOp uint8

const (
	OpMove  SegmentOp = iota // begin a new subpath at P0
	OpLine                   // straight line to P0
	OpCubic                  // cubic Bezier: controls P0, P1, endpoint P2
	OpArc                    // circular arc: center P0, Radius, Start/End angles
	OpClose                  // close the current subpath
)

// Segment is one drawing command. A single flat struct is used for all ops to
// keep the segment list a contiguous allocation; unused fields are zero.
//
// Field meaning per op:
//
//	OpMove, OpLine: P0 is the target point.
//	OpCubic:        P0 and P1 are control points, P2 is the endpoint.
//	OpArc:          P0 is the arc center; Radius, Start, End and Clockwise
//	                describe the sweep.
//	OpClose:        no fields.
type Segment struct {
	Op         SegmentOp
	P0, P1, P2 Vec2
	Radius     float64
	Start, End float64
	Clockwise  bool
}

// Path is an ordered, append-only sequence of drawing commands. Every
// generator returns a fresh Path per call; there is no shared path state.
type Path struct {
	segs []Segment
}

// MoveTo begins a new subpath at p.
func (p *Path) MoveTo(pt Vec2) {
	p.segs = append(p.segs, Segment{Op: OpMove, P0: pt})
}

// LineTo appends a straight line to pt.
func (p *Path) LineTo(pt Vec2) {
	p.segs = append(p.segs, Segment{Op: OpLine, P0: pt})
}

// CubicTo appends a cubic Bezier with control points c0, c1 ending at pt.
func (p *Path) CubicTo(c0, c1, pt Vec2) {
	p.segs = append(p.segs, Segment{Op: OpCubic, P0: c0, P1: c1, P2: pt})
}

// Arc appends a circular arc around center with the given radius, from angle
// start to angle end. Clockwise selects the sweep direction in screen space
// (Y down). The host connects the current point to the arc start with a line,
// so callers wanting a detached arc should MoveTo its start point first.
func (p *Path) Arc(center Vec2, radius, start, end float64, clockwise bool) {
	p.segs = append(p.segs, Segment{
		Op: OpArc, P0: center, Radius: radius,
		Start: start, End: end, Clockwise: clockwise,
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Op: OpClose})
}

// Append copies all segments of other onto p. Used by hollow variants to
// compose outer and inner contours into one even-odd fill.
func (p *Path) Append(other *Path) {
	p.segs = append(p.segs, other.segs...)
}

// Segments returns the command list. The slice is owned by the path; callers
// must not mutate it.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Empty reports whether the path contains no commands.
func (p *Path) Empty() bool {
	return len(p.segs) == 0
}

// Bounds returns a conservative axis-aligned bounding box: cubic control
// points are included as-is and arcs contribute their full circle's box.
// Good enough for offscreen sizing; not a tight hull.
func (p *Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	grow := func(x, y float64) {
		if first {
			minX, maxX = x, x
			minY, maxY = y, y
			first = false
			return
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	for i := range p.segs {
		s := &p.segs[i]
		switch s.Op {
		case OpMove, OpLine:
			grow(s.P0.X, s.P0.Y)
		case OpCubic:
			grow(s.P0.X, s.P0.Y)
			grow(s.P1.X, s.P1.Y)
			grow(s.P2.X, s.P2.Y)
		case OpArc:
			grow(s.P0.X-s.Radius, s.P0.Y-s.Radius)
			grow(s.P0.X+s.Radius, s.P0.Y+s.Radius)
		}
	}
	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// AppendTo replays the path into an ebiten vector.Path for tessellation.
// Arc segments map 1:1 onto vector.Path.Arc.
func (p *Path) AppendTo(vp *vector.Path) {
	for i := range p.segs {
		s := &p.segs[i]
		switch s.Op {
		case OpMove:
			vp.MoveTo(float32(s.P0.X), float32(s.P0.Y))
		case OpLine:
			vp.LineTo(float32(s.P0.X), float32(s.P0.Y))
		case OpCubic:
			vp.CubicTo(
				float32(s.P0.X), float32(s.P0.Y),
				float32(s.P1.X), float32(s.P1.Y),
				float32(s.P2.X), float32(s.P2.Y),
			)
		case OpArc:
			dir := vector.CounterClockwise
			if s.Clockwise {
				dir = vector.Clockwise
			}
			vp.Arc(
				float32(s.P0.X), float32(s.P0.Y), float32(s.Radius),
				float32(s.Start), float32(s.End), dir,
			)
		case OpClose:
			vp.Close()
		}
	}
}

// --- Shared ring helpers ---

// ringBasis reduces bounds to its centered square and returns the square's
// center and radius. Every ring generator starts here so radius math is
// aspect-ratio independent.
func ringBasis(bounds Rect) (Vec2, float64) {
	sq := bounds.CenteredSquare()
	return sq.Center(), sq.Width / 2
}

// ladderRadius returns the i-th radius (0-based) of an n-step ladder climbing
// from radius*(1-thickness) to radius. The outermost step lands on radius
// exactly; radii strictly increase, constant only when n == 1.
func ladderRadius(radius, thickness float64, i, n int) float64 {
	inner := radius * (1 - thickness)
	step := (radius - inner) / float64(n)
	return inner + step*float64(i+1)
}

// detachedArc appends an arc as its own subpath: a MoveTo to the arc's start
// point so the host does not connect it to the previous subpath.
func detachedArc(p *Path, center Vec2, radius, start, end float64, clockwise bool) {
	p.MoveTo(PointOnCircle(center, radius, start))
	p.Arc(center, radius, start, end, clockwise)
}
