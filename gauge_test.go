package garland

import "testing"

func TestGaugeRingTickCount(t *testing.T) {
	bounds := Rect{Width: 100, Height: 100}
	for _, ticks := range []int{1, 4, 7, 60} {
		p := GaugeRing{Ticks: ticks, Thickness: 0.3}.Path(bounds)
		if got := len(p.Segments()); got != ticks*2 {
			t.Errorf("Ticks=%d: %d segments, want %d move+line pairs", ticks, got, ticks*2)
		}
	}
}

func TestGaugeRingQuarterTicks(t *testing.T) {
	// Four ticks at half thickness on a 100x100 rect: segments at
	// 0, 90, 180, 270 degrees, each from radius 25 to radius 50.
	p := GaugeRing{Ticks: 4, Thickness: 0.5}.Path(Rect{Width: 100, Height: 100})
	segs := p.Segments()
	if len(segs) != 8 {
		t.Fatalf("got %d segments, want 8", len(segs))
	}

	want := []Vec2{
		{X: 75, Y: 50}, {X: 100, Y: 50}, // 0 deg
		{X: 50, Y: 75}, {X: 50, Y: 100}, // 90 deg
		{X: 25, Y: 50}, {X: 0, Y: 50}, // 180 deg
		{X: 50, Y: 25}, {X: 50, Y: 0}, // 270 deg
	}
	for i, w := range want {
		assertVec(t, "tick point", segs[i].P0, w)
	}
}

func TestGaugeRingRadialTicks(t *testing.T) {
	// Every tick is radial: inner and outer points share the angle, and
	// sit on the expected radii.
	bounds := Rect{Width: 200, Height: 200}
	c := Vec2{X: 100, Y: 100}
	p := GaugeRing{Ticks: 12, Thickness: 0.25}.Path(bounds)
	segs := p.Segments()
	for i := 0; i < len(segs); i += 2 {
		assertNear(t, "inner radius", dist(segs[i].P0, c), 75)
		assertNear(t, "outer radius", dist(segs[i+1].P0, c), 100)
	}
}

func TestGaugeRingDefaults(t *testing.T) {
	p := GaugeRing{}.Path(Rect{Width: 100, Height: 100})
	if got := len(p.Segments()); got != 120 {
		t.Errorf("zero value: %d segments, want 120 (60 ticks)", got)
	}
}

func TestGaugeRingClampsTickCount(t *testing.T) {
	p := GaugeRing{Ticks: -7}.Path(Rect{Width: 100, Height: 100})
	if got := len(p.Segments()); got != 2 {
		t.Errorf("negative tick count: %d segments, want 2 (floored to 1)", got)
	}
}

func TestGaugeRingNonSquareBounds(t *testing.T) {
	// A wide rect reduces to its centered square; radius comes from the
	// short side.
	p := GaugeRing{Ticks: 1, Thickness: 0.5}.Path(Rect{Width: 300, Height: 100})
	segs := p.Segments()
	assertVec(t, "inner", segs[0].P0, Vec2{X: 175, Y: 50})
	assertVec(t, "outer", segs[1].P0, Vec2{X: 200, Y: 50})
}
