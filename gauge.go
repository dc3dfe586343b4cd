package garland

import "math"

// GaugeRing draws evenly spaced radial tick marks, the face of a dial or
// clock. A stroked shape: set Style.Stroke on its node, not Style.Fill.
type GaugeRing struct {
	// Ticks is the number of tick marks. Default 60, floor 1.
	Ticks int
	// Thickness is each tick's length as a fraction of the ring radius.
	// Default 0.25, clamped to (0, 1].
	Thickness float64
}

// Path emits one move+line pair per tick, from radius*(1-Thickness) out to
// the full radius, spaced 2*pi/Ticks apart starting at 3 o'clock.
func (g GaugeRing) Path(bounds Rect) *Path {
	ticks := countOrDefault(g.Ticks, 60, 1)
	th := ratioOrDefault(g.Thickness, 0.25, 1e-6, 1)

	c, r := ringBasis(bounds)
	inner := r * (1 - th)

	p := &Path{}
	step := 2 * math.Pi / float64(ticks)
	for i := 0; i < ticks; i++ {
		a := step * float64(i)
		p.MoveTo(PointOnCircle(c, inner, a))
		p.LineTo(PointOnCircle(c, r, a))
	}
	return p
}
