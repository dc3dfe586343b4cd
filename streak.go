package garland

import (
	"math"
	"math/rand/v2"
)

// StreakRing draws concentric arcs whose start angles shift a little more on
// each layer, a swirling cascade like a comet tail wrapped into a ring.
// A stroked shape.
type StreakRing struct {
	// Streaks is the number of concentric arcs. Default 3, floor 1.
	Streaks int
	// Thickness is the radial depth of the ring as a fraction of the radius.
	// Default 0.3, clamped to (0, 1].
	Thickness float64
	// Sweep is the angular width of every arc in radians. Default pi/2.
	Sweep float64
	// Shift is the per-layer start offset in radians. Streak i starts at
	// Shift*(i+1). Default pi/10.
	Shift float64
	// Clockwise flips the shift direction, making the cascade swirl the
	// other way. The direction sign applies uniformly to every layer.
	Clockwise bool
}

// Path emits Streaks detached arcs on a strictly increasing radius ladder;
// the outermost arc sits exactly on the ring radius.
func (s StreakRing) Path(bounds Rect) *Path {
	n := countOrDefault(s.Streaks, 3, 1)
	th := ratioOrDefault(s.Thickness, 0.3, 1e-6, 1)
	sweep := s.Sweep
	if sweep == 0 {
		sweep = math.Pi / 2
	}
	shift := s.Shift
	if shift == 0 {
		shift = math.Pi / 10
	}
	if s.Clockwise {
		shift = -shift
	}

	c, r := ringBasis(bounds)
	p := &Path{}
	for i := 0; i < n; i++ {
		ri := ladderRadius(r, th, i, n)
		start := shift * float64(i+1)
		detachedArc(p, c, ri, start, start+sweep, true)
	}
	return p
}

// SparseStreakConfig parameterizes the randomized sparse streak generator.
type SparseStreakConfig struct {
	// Layers is the number of concentric layers. Default 3, floor 1.
	Layers int
	// MinStreaks and MaxStreaks bound the random per-layer streak count.
	// Defaults 2 and 5.
	MinStreaks, MaxStreaks int
	// Thickness is the radial depth of the ring as a fraction of the radius.
	// Default 0.35, clamped to (0, 1].
	Thickness float64
}

// SparseStreakRing draws layers of randomly scattered arcs that never touch:
// each layer's circle is partitioned into equal slices and every streak is
// trimmed back from both ends of its slice. The randomness is resolved once,
// by NewSparseStreakRing; Path replays the stored spans deterministically.
//
// The zero value is usable with literal data: fill Spans directly (one inner
// slice per layer) for fully reproducible geometry with no rng involved.
// A stroked shape.
type SparseStreakRing struct {
	// Spans holds one span list per layer, innermost layer first.
	Spans [][]Span
	// Thickness is the radial depth of the ring as a fraction of the radius.
	// Default 0.35, clamped to (0, 1].
	Thickness float64
}

// NewSparseStreakRing rolls the span layout from cfg. Per layer it picks a
// streak count in [MinStreaks, MaxStreaks], divides the circle into that many
// equal slices, and trims an independent uniform amount up to 49% of the
// slice width from each end, so adjacent streaks always keep a gap.
// A nil rng uses the process-wide source; pass a seeded *rand.Rand for
// reproducible output.
func NewSparseStreakRing(cfg SparseStreakConfig, rng *rand.Rand) *SparseStreakRing {
	layers := countOrDefault(cfg.Layers, 3, 1)
	min := countOrDefault(cfg.MinStreaks, 2, 1)
	max := countOrDefault(cfg.MaxStreaks, 5, min)
	if max < min {
		max = min
	}

	spans := make([][]Span, layers)
	for l := 0; l < layers; l++ {
		k := min + randIntN(rng, max-min+1)
		slice := 2 * math.Pi / float64(k)
		layer := make([]Span, k)
		for j := 0; j < k; j++ {
			lead := randFloat(rng) * 0.49 * slice
			trail := randFloat(rng) * 0.49 * slice
			layer[j] = Span{
				Start: float64(j)*slice + lead,
				End:   float64(j+1)*slice - trail,
			}
		}
		spans[l] = layer
	}

	return &SparseStreakRing{Spans: spans, Thickness: cfg.Thickness}
}

// Path emits one detached arc per stored span, layers climbing the radius
// ladder from inside out.
func (s *SparseStreakRing) Path(bounds Rect) *Path {
	p := &Path{}
	n := len(s.Spans)
	if n == 0 {
		return p
	}
	th := ratioOrDefault(s.Thickness, 0.35, 1e-6, 1)

	c, r := ringBasis(bounds)
	for l, layer := range s.Spans {
		ri := ladderRadius(r, th, l, n)
		for _, sp := range layer {
			detachedArc(p, c, ri, sp.Start, sp.End, true)
		}
	}
	return p
}

// --- Injectable randomness ---
// Randomized constructors take a *rand.Rand; nil falls back to the global
// math/rand/v2 source.

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

func randIntN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// randRange returns a uniform draw in [min, max].
func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + randFloat(rng)*(max-min)
}
