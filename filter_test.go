package garland

import "testing"

func TestScanlineFilterPadding(t *testing.T) {
	if got := NewScanlineFilter().Padding(); got != 0 {
		t.Errorf("scanline padding = %d, want 0", got)
	}
}

func TestGlowFilterPadding(t *testing.T) {
	cases := []struct {
		radius float64
		want   int
	}{
		{0, 6},    // zero value uses the default radius
		{2.5, 3},  // padding rounds up
		{30, 16},  // radius clamps to 16
		{0.2, 1},  // radius clamps up to 1
		{12, 12},
	}
	for _, c := range cases {
		f := &GlowFilter{Radius: c.radius}
		if got := f.Padding(); got != c.want {
			t.Errorf("GlowFilter{Radius: %v}.Padding() = %d, want %d", c.radius, got, c.want)
		}
	}
}

func TestFilterChainPaddingAccumulates(t *testing.T) {
	chain := []Filter{
		&GlowFilter{Radius: 4},
		NewScanlineFilter(),
		&GlowFilter{Radius: 10},
	}
	if got := filterChainPadding(chain); got != 14 {
		t.Errorf("chain padding = %d, want 14", got)
	}
	if got := filterChainPadding(nil); got != 0 {
		t.Errorf("empty chain padding = %d, want 0", got)
	}
}
