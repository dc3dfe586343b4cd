package garland

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestBroadcastRingCrossProduct(t *testing.T) {
	b := BroadcastRing{
		Spans:  []Span{{Start: 0, End: 1}, {Start: 2, End: 2.5}},
		Layers: 3,
	}
	p := b.Path(Rect{Width: 200, Height: 200})
	// 2 spans x 3 layers, each a move+arc pair.
	if got := len(p.Segments()); got != 12 {
		t.Errorf("got %d segments, want 12", got)
	}
}

func TestBroadcastRingLayerRadii(t *testing.T) {
	b := BroadcastRing{
		Spans:     []Span{{Start: 0, End: 1}},
		Layers:    4,
		Thickness: 0.4,
	}
	segs := b.Path(Rect{Width: 200, Height: 200}).Segments()
	// Ladder on radius 100, thickness 0.4: 70, 80, 90, 100.
	want := []float64{70, 80, 90, 100}
	for i, w := range want {
		assertNear(t, "layer radius", segs[i*2+1].Radius, w)
	}
}

func TestBroadcastRingSpanAngles(t *testing.T) {
	sp := Span{Start: 0.7, End: 1.9}
	b := BroadcastRing{Spans: []Span{sp}, Layers: 1}
	segs := b.Path(Rect{Width: 100, Height: 100}).Segments()
	assertNear(t, "arc start", segs[1].Start, sp.Start)
	assertNear(t, "arc end", segs[1].End, sp.End)
}

func TestBroadcastRingEmptySpans(t *testing.T) {
	if !(BroadcastRing{Layers: 3}).Path(Rect{Width: 100, Height: 100}).Empty() {
		t.Error("no spans should produce an empty path")
	}
}

func TestBroadcastRingClampsLayers(t *testing.T) {
	b := BroadcastRing{Spans: []Span{{Start: 0, End: 1}}, Layers: -2}
	if got := len(b.Path(Rect{Width: 100, Height: 100}).Segments()); got != 2 {
		t.Errorf("negative layer count: %d segments, want 2 (floored to 1)", got)
	}
}

func TestUniformBroadcastRingCenteredSpans(t *testing.T) {
	n := 6
	b := UniformBroadcastRing(n, 2, 0.5, rand.New(rand.NewPCG(3, 9)))
	if len(b.Spans) != n {
		t.Fatalf("got %d spans, want %d", len(b.Spans), n)
	}
	slice := 2 * math.Pi / float64(n)
	for i, sp := range b.Spans {
		mid := (float64(i) + 0.5) * slice
		assertNear(t, "span midpoint", (sp.Start+sp.End)/2, mid)
		w := sp.Width()
		if w < 0.2*slice-epsilon || w > 0.9*slice+epsilon {
			t.Errorf("span %d width %v outside [0.2, 0.9] of slice %v", i, w, slice)
		}
	}
}

func TestScatteredBroadcastRingSpansInSlices(t *testing.T) {
	n := 8
	b := ScatteredBroadcastRing(n, 2, 0.5, rand.New(rand.NewPCG(5, 1)))
	slice := 2 * math.Pi / float64(n)
	for i, sp := range b.Spans {
		lo := float64(i) * slice
		hi := float64(i+1) * slice
		if sp.Start < lo-epsilon || sp.End > hi+epsilon {
			t.Errorf("span %d [%v, %v) escapes slice [%v, %v)", i, sp.Start, sp.End, lo, hi)
		}
		w := sp.Width()
		if w < 0.2*slice-epsilon || w > 0.9*slice+epsilon {
			t.Errorf("span %d width %v outside [0.2, 0.9] of slice %v", i, w, slice)
		}
	}
}

func TestRandomBroadcastRingsDeterministic(t *testing.T) {
	a := ScatteredBroadcastRing(5, 3, 0.5, rand.New(rand.NewPCG(2, 2)))
	b := ScatteredBroadcastRing(5, 3, 0.5, rand.New(rand.NewPCG(2, 2)))
	for i := range a.Spans {
		assertNear(t, "start", a.Spans[i].Start, b.Spans[i].Start)
		assertNear(t, "end", a.Spans[i].End, b.Spans[i].End)
	}
}

func TestRandomBroadcastRingFloorsCount(t *testing.T) {
	b := UniformBroadcastRing(0, 1, 0.5, rand.New(rand.NewPCG(1, 1)))
	if len(b.Spans) != 1 {
		t.Errorf("n=0: got %d spans, want 1", len(b.Spans))
	}
}
