package garland

import (
	"math"
	"math/rand/v2"
)

// BroadcastRing repeats a set of angular spans across concentric layers, the
// classic expanding-signal glyph. Spans can be supplied as literal data or
// rolled by the random constructors below. A stroked shape.
type BroadcastRing struct {
	// Spans is the set of angular intervals to broadcast.
	Spans []Span
	// Layers is the number of concentric repeats. Default 3, floor 1.
	Layers int
	// Thickness is the radial depth of the ring as a fraction of the radius.
	// Default 0.5, clamped to (0, 1].
	Thickness float64
}

// Path emits the cross product of spans and layers: every span is drawn as a
// detached arc at each ladder radius.
func (b BroadcastRing) Path(bounds Rect) *Path {
	p := &Path{}
	if len(b.Spans) == 0 {
		return p
	}
	layers := countOrDefault(b.Layers, 3, 1)
	th := ratioOrDefault(b.Thickness, 0.5, 1e-6, 1)

	c, r := ringBasis(bounds)
	for l := 0; l < layers; l++ {
		ri := ladderRadius(r, th, l, layers)
		for _, sp := range b.Spans {
			detachedArc(p, c, ri, sp.Start, sp.End, true)
		}
	}
	return p
}

// UniformBroadcastRing divides the circle into n equal slices and centers a
// randomly sized span (width in [0.2, 0.9] of the slice) in each, giving an
// even rhythm with varied dash lengths. n floors to 1. A nil rng uses the
// global source.
func UniformBroadcastRing(n, layers int, thickness float64, rng *rand.Rand) BroadcastRing {
	n = floorInt(n, 1)
	slice := 2 * math.Pi / float64(n)
	spans := make([]Span, n)
	for i := 0; i < n; i++ {
		w := randRange(rng, 0.2, 0.9) * slice
		mid := (float64(i) + 0.5) * slice
		spans[i] = Span{Start: mid - w/2, End: mid + w/2}
	}
	return BroadcastRing{Spans: spans, Layers: layers, Thickness: thickness}
}

// ScatteredBroadcastRing rolls span widths like UniformBroadcastRing but
// also shifts each span to a random offset within its slice's leftover room,
// so the rhythm turns irregular. n floors to 1. A nil rng uses the global
// source.
func ScatteredBroadcastRing(n, layers int, thickness float64, rng *rand.Rand) BroadcastRing {
	n = floorInt(n, 1)
	slice := 2 * math.Pi / float64(n)
	spans := make([]Span, n)
	for i := 0; i < n; i++ {
		w := randRange(rng, 0.2, 0.9) * slice
		off := randFloat(rng) * (slice - w)
		start := float64(i)*slice + off
		spans[i] = Span{Start: start, End: start + w}
	}
	return BroadcastRing{Spans: spans, Layers: layers, Thickness: thickness}
}
