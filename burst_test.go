package garland

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestBurstSpokesDeterministic(t *testing.T) {
	cfg := BurstConfig{}
	a := BurstSpokes(cfg, rand.New(rand.NewPCG(9, 4)))
	b := BurstSpokes(cfg, rand.New(rand.NewPCG(9, 4)))
	if len(a) != len(b) {
		t.Fatalf("spoke counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		assertNear(t, "angle", a[i].Angle, b[i].Angle)
		assertNear(t, "width", a[i].Width, b[i].Width)
	}
}

func TestBurstSpokesWidthsInRange(t *testing.T) {
	cfg := BurstConfig{MinWidth: 0.1, MaxWidth: 0.3, MinGap: 0.05, MaxGap: 0.1}
	spokes := BurstSpokes(cfg, rand.New(rand.NewPCG(1, 8)))
	if len(spokes) == 0 {
		t.Fatal("expected at least one spoke")
	}
	for i, s := range spokes {
		if s.Width < 0.1-epsilon || s.Width > 0.3+epsilon {
			t.Errorf("spoke %d width %v outside [0.1, 0.3]", i, s.Width)
		}
	}
}

func TestBurstSpokesSortedNonOverlapping(t *testing.T) {
	spokes := BurstSpokes(BurstConfig{}, rand.New(rand.NewPCG(6, 6)))
	for i := 1; i < len(spokes); i++ {
		prevEnd := spokes[i-1].Angle + spokes[i-1].Width/2
		start := spokes[i].Angle - spokes[i].Width/2
		if start <= prevEnd {
			t.Errorf("spoke %d starts at %v before previous end %v", i, start, prevEnd)
		}
	}
}

func TestBurstSpokesInsideOneRevolution(t *testing.T) {
	spokes := BurstSpokes(BurstConfig{}, rand.New(rand.NewPCG(12, 3)))
	first := spokes[0].Angle - spokes[0].Width/2
	last := spokes[len(spokes)-1].Angle + spokes[len(spokes)-1].Width/2
	if last-first > 2*math.Pi+epsilon {
		t.Errorf("spokes cover %v radians, more than one revolution", last-first)
	}
}

func TestBurstSpokesNegativeBoundsClamp(t *testing.T) {
	// A negative width+gap advance would walk backwards and never wrap the
	// revolution; the bounds clamp to a positive floor instead.
	cfg := BurstConfig{MinWidth: -1, MaxWidth: -0.5, MinGap: -0.5, MaxGap: -0.3}
	spokes := BurstSpokes(cfg, rand.New(rand.NewPCG(3, 11)))
	if len(spokes) == 0 {
		t.Fatal("expected at least one spoke")
	}
	for i, s := range spokes {
		if s.Width <= 0 {
			t.Errorf("spoke %d width %v not positive", i, s.Width)
		}
	}
	first := spokes[0].Angle - spokes[0].Width/2
	last := spokes[len(spokes)-1].Angle + spokes[len(spokes)-1].Width/2
	if last-first > 2*math.Pi+epsilon {
		t.Errorf("spokes cover %v radians, more than one revolution", last-first)
	}
}

func TestBurstRingPathGeometry(t *testing.T) {
	bounds := Rect{Width: 200, Height: 200}
	c := Vec2{X: 100, Y: 100}
	b := BurstRing{
		Spokes: []Spoke{{Angle: 0.5, Width: 0.2}, {Angle: 2.0, Width: 0.3}},
		Inset:  0.4,
	}
	segs := b.Path(bounds).Segments()

	// Annulus: two circle contours (move, arc, close each), then 4 segments
	// per wedge (move, line, arc, close).
	if len(segs) != 6+2*4 {
		t.Fatalf("got %d segments, want 14", len(segs))
	}
	assertNear(t, "outer circle radius", segs[1].Radius, 100)
	assertNear(t, "inner circle radius", segs[4].Radius, 60)

	// First wedge: center, rim, arc across the width.
	assertVec(t, "wedge apex", segs[6].P0, c)
	assertNear(t, "wedge rim radius", dist(segs[7].P0, c), 100)
	assertNear(t, "wedge arc start", segs[8].Start, 0.5-0.1)
	assertNear(t, "wedge arc end", segs[8].End, 0.5+0.1)
}

func TestBurstRingDefaultInset(t *testing.T) {
	b := BurstRing{Spokes: []Spoke{{Angle: 1, Width: 0.1}}}
	segs := b.Path(Rect{Width: 200, Height: 200}).Segments()
	assertNear(t, "default inset radius", segs[4].Radius, 100*(1-0.35))
}
