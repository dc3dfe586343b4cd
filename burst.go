package garland

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Spoke is one wedge of a burst ring: a center angle and an angular width,
// both in radians.
type Spoke struct {
	Angle, Width float64
}

// BurstConfig bounds the random walk that lays out burst spokes. All values
// are radians; zero means the documented default, and out-of-range values
// clamp to [0.005, pi].
type BurstConfig struct {
	// MinWidth and MaxWidth bound each spoke's angular width.
	// Defaults 0.04 and 0.22.
	MinWidth, MaxWidth float64
	// MinGap and MaxGap bound the gap between consecutive spokes.
	// Defaults 0.02 and 0.16.
	MinGap, MaxGap float64
}

// BurstSpokes walks the circle from a random start angle, alternating a
// random spoke width and a random gap, until the walk wraps past a full
// revolution. A spoke whose width would cross the wrap point is discarded,
// so spokes never overlap. Angles increase monotonically from the start
// angle and are left unnormalized (trig downstream does not care).
// A nil rng uses the global math/rand/v2 source; pass a seeded *rand.Rand
// for a reproducible layout.
func BurstSpokes(cfg BurstConfig, rng *rand.Rand) []Spoke {
	// The walk below only terminates if every width+gap advance is positive,
	// so the bounds clamp to a positive floor.
	minW := ratioOrDefault(cfg.MinWidth, 0.04, 0.005, math.Pi)
	maxW := ratioOrDefault(cfg.MaxWidth, 0.22, 0.005, math.Pi)
	if maxW < minW {
		maxW = minW
	}
	minG := ratioOrDefault(cfg.MinGap, 0.02, 0.005, math.Pi)
	maxG := ratioOrDefault(cfg.MaxGap, 0.16, 0.005, math.Pi)
	if maxG < minG {
		maxG = minG
	}

	start := randFloat(rng) * 2 * math.Pi
	var spokes []Spoke
	walked := 0.0
	for {
		w := randRange(rng, minW, maxW)
		if walked+w > 2*math.Pi {
			break
		}
		spokes = append(spokes, Spoke{Angle: start + walked + w/2, Width: w})
		walked += w + randRange(rng, minG, maxG)
	}
	return spokes
}

// BurstRing fills randomized pie wedges clipped to an annulus band, a
// starburst trapped in a ring. Unlike the other shapes it draws directly
// onto a surface: the annulus is filled with Background, then the wedges are
// painted in Foreground with a source-atop blend so only the band shows
// through. The spoke layout is plain data; build it with BurstSpokes or
// supply literals.
type BurstRing struct {
	// Spokes is the wedge layout.
	Spokes []Spoke
	// Inset is the band's radial depth as a fraction of the radius.
	// Default 0.35, clamped to (0.01, 0.99).
	Inset float64
	// Background fills the annulus band; Foreground fills the wedges.
	Background, Foreground Color
}

func (b BurstRing) inset() float64 {
	return ratioOrDefault(b.Inset, 0.35, 0.01, 0.99)
}

// annulusPath returns the band as outer plus inner circle contours for
// even-odd filling.
func (b BurstRing) annulusPath(c Vec2, r float64) *Path {
	inner := r * (1 - b.inset())
	p := &Path{}
	p.MoveTo(PointOnCircle(c, r, 0))
	p.Arc(c, r, 0, 2*math.Pi, true)
	p.Close()
	p.MoveTo(PointOnCircle(c, inner, 0))
	p.Arc(c, inner, 0, 2*math.Pi, true)
	p.Close()
	return p
}

// wedgePath returns every spoke as a filled sector from the center to the
// rim, all in one path.
func (b BurstRing) wedgePath(c Vec2, r float64) *Path {
	p := &Path{}
	for _, s := range b.Spokes {
		a0 := s.Angle - s.Width/2
		a1 := s.Angle + s.Width/2
		p.MoveTo(c)
		p.LineTo(PointOnCircle(c, r, a0))
		p.Arc(c, r, a0, a1, true)
		p.Close()
	}
	return p
}

// Draw renders the burst into dst's centered square region: the annulus in
// Background, then the wedges in Foreground clipped to the band via a
// source-atop blend. Work happens on a pooled offscreen so the blend cannot
// clip against pixels already present in dst.
func (b BurstRing) Draw(dst *ebiten.Image, bounds Rect, pool *OffscreenPool) {
	sq := bounds.CenteredSquare()
	side := int(math.Ceil(sq.Width))
	if side <= 0 || len(b.Spokes) == 0 {
		return
	}
	r := sq.Width / 2
	local := Vec2{X: r, Y: r}

	off := pool.Acquire(side, side)
	fillPath(off, b.annulusPath(local, r), b.Background, BlendNormal)
	fillPath(off, b.wedgePath(local, r), b.Foreground, BlendClip)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(sq.X, sq.Y)
	dst.DrawImage(off, &op)
	pool.Release(off)
}

// Path returns the raw geometry (annulus contours, then wedge sectors) for
// hosts that want to style the burst themselves. Note that filling this
// combined path even-odd XORs wedges against the band; Draw is the primary
// operation.
func (b BurstRing) Path(bounds Rect) *Path {
	c, r := ringBasis(bounds)
	p := b.annulusPath(c, r)
	p.Append(b.wedgePath(c, r))
	return p
}
