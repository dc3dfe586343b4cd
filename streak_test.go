package garland

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestStreakRingArcSpans(t *testing.T) {
	bounds := Rect{Width: 200, Height: 200}
	sweep := 1.3
	p := StreakRing{Streaks: 5, Thickness: 0.4, Sweep: sweep, Shift: 0.2}.Path(bounds)
	segs := p.Segments()
	if len(segs) != 10 {
		t.Fatalf("got %d segments, want 10 (5 move+arc pairs)", len(segs))
	}
	for i := 1; i < len(segs); i += 2 {
		if segs[i].Op != OpArc {
			t.Fatalf("segs[%d].Op = %d, want arc", i, segs[i].Op)
		}
		assertNear(t, "sweep", segs[i].End-segs[i].Start, sweep)
	}
}

func TestStreakRingRadiiIncrease(t *testing.T) {
	p := StreakRing{Streaks: 6, Thickness: 0.5}.Path(Rect{Width: 200, Height: 200})
	segs := p.Segments()
	prev := 0.0
	for i := 1; i < len(segs); i += 2 {
		if segs[i].Radius <= prev {
			t.Errorf("radius %v not strictly increasing (prev %v)", segs[i].Radius, prev)
		}
		prev = segs[i].Radius
	}
	assertNear(t, "outermost radius", prev, 100)
}

func TestStreakRingSingleStreak(t *testing.T) {
	p := StreakRing{Streaks: 1, Thickness: 0.3}.Path(Rect{Width: 200, Height: 200})
	segs := p.Segments()
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	assertNear(t, "single radius", segs[1].Radius, 100)
}

func TestStreakRingShiftDirection(t *testing.T) {
	ccw := StreakRing{Streaks: 2, Shift: 0.3}.Path(Rect{Width: 100, Height: 100})
	cw := StreakRing{Streaks: 2, Shift: 0.3, Clockwise: true}.Path(Rect{Width: 100, Height: 100})
	assertNear(t, "ccw layer 0 start", ccw.Segments()[1].Start, 0.3)
	assertNear(t, "ccw layer 1 start", ccw.Segments()[3].Start, 0.6)
	assertNear(t, "cw layer 0 start", cw.Segments()[1].Start, -0.3)
	assertNear(t, "cw layer 1 start", cw.Segments()[3].Start, -0.6)
}

func TestStreakRingClampsCount(t *testing.T) {
	p := StreakRing{Streaks: -1}.Path(Rect{Width: 100, Height: 100})
	if got := len(p.Segments()); got != 2 {
		t.Errorf("negative streak count: %d segments, want 2 (floored to 1)", got)
	}
}

// --- SparseStreakRing ---

func TestSparseStreakRingDeterministic(t *testing.T) {
	cfg := SparseStreakConfig{Layers: 4, MinStreaks: 3, MaxStreaks: 7}
	a := NewSparseStreakRing(cfg, rand.New(rand.NewPCG(11, 42)))
	b := NewSparseStreakRing(cfg, rand.New(rand.NewPCG(11, 42)))

	if len(a.Spans) != len(b.Spans) {
		t.Fatalf("layer counts differ: %d vs %d", len(a.Spans), len(b.Spans))
	}
	for l := range a.Spans {
		if len(a.Spans[l]) != len(b.Spans[l]) {
			t.Fatalf("layer %d span counts differ", l)
		}
		for j := range a.Spans[l] {
			assertNear(t, "span start", a.Spans[l][j].Start, b.Spans[l][j].Start)
			assertNear(t, "span end", a.Spans[l][j].End, b.Spans[l][j].End)
		}
	}
}

func TestSparseStreakRingSpansStayInSlices(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	s := NewSparseStreakRing(SparseStreakConfig{Layers: 5, MinStreaks: 2, MaxStreaks: 8}, rng)

	for l, layer := range s.Spans {
		k := len(layer)
		if k < 2 || k > 8 {
			t.Fatalf("layer %d: %d streaks outside [2, 8]", l, k)
		}
		slice := 2 * math.Pi / float64(k)
		for j, sp := range layer {
			lo := float64(j) * slice
			hi := float64(j+1) * slice
			if sp.Start < lo-epsilon || sp.End > hi+epsilon {
				t.Errorf("layer %d span %d [%v, %v) escapes slice [%v, %v)", l, j, sp.Start, sp.End, lo, hi)
			}
			// Trims are capped at 49% per side, so at least 2% survives.
			if sp.Width() < 0.02*slice-epsilon {
				t.Errorf("layer %d span %d width %v below the trim floor", l, j, sp.Width())
			}
		}
	}
}

func TestSparseStreakRingLiteralSpans(t *testing.T) {
	// Precomputed construction: no rng involved, fully reproducible.
	s := &SparseStreakRing{
		Spans: [][]Span{
			{{Start: 0, End: 1}, {Start: 2, End: 3}},
			{{Start: 0.5, End: 1.5}},
		},
		Thickness: 0.4,
	}
	p := s.Path(Rect{Width: 200, Height: 200})
	segs := p.Segments()
	if len(segs) != 6 {
		t.Fatalf("got %d segments, want 6 (3 move+arc pairs)", len(segs))
	}
	// Two layers climbing the ladder: inner 60, step 20.
	assertNear(t, "layer 0 radius", segs[1].Radius, 80)
	assertNear(t, "layer 1 radius", segs[5].Radius, 100)
}

func TestSparseStreakRingEmpty(t *testing.T) {
	s := &SparseStreakRing{}
	if !s.Path(Rect{Width: 100, Height: 100}).Empty() {
		t.Error("no spans should produce an empty path")
	}
}
