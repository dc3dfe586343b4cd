package garland

import "math"

// WaveRing is a disc whose edge undulates like a sine wave: peaks at the
// full radius, valleys at radius*(1-Amplitude). Rather than sampling a sine
// pointwise, each half period is a single cubic Bezier whose control points
// run along the tangent at the peak and valley anchors, which reads as a
// smooth sinusoid at a fraction of the segment count. A filled shape.
type WaveRing struct {
	// Amplitude is the wave depth as a fraction of the radius.
	// Default 0.5, clamped to [0.1, 0.95].
	Amplitude float64
	// Frequency is the number of full wave periods around the circle.
	// Default 8, clamped to [1, 60].
	Frequency int
	// Crest and Trough scale the control-point reach at peaks and valleys
	// respectively, as fractions of the local arc length per period. Longer
	// handles flatten the extremes; shorter ones sharpen them.
	// Default 0.25 each, clamped to [0, 1].
	Crest, Trough float64
}

// tangentAt returns the unit tangent at the given angle, perpendicular to
// the radius vector and pointing toward increasing angle.
func tangentAt(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: -sin, Y: cos}
}

func offset(p Vec2, dir Vec2, d float64) Vec2 {
	return Vec2{X: p.X + dir.X*d, Y: p.Y + dir.Y*d}
}

// Path emits one closed contour of 2*Frequency cubics: peak to valley to
// next peak, each half period one Bezier.
func (w WaveRing) Path(bounds Rect) *Path {
	amp := ratioOrDefault(w.Amplitude, 0.5, 0.1, 0.95)
	freq := w.Frequency
	if freq == 0 {
		freq = 8
	}
	freq = int(clampFloat(float64(freq), 1, 60))
	crest := ratioOrDefault(w.Crest, 0.25, 0, 1)
	trough := ratioOrDefault(w.Trough, 0.25, 0, 1)

	c, r := ringBasis(bounds)
	inner := r * (1 - amp)
	period := 2 * math.Pi / float64(freq)
	// Handle reach is proportional to the local circumference per period.
	crestLen := 2 * math.Pi * r / float64(freq) * crest
	troughLen := 2 * math.Pi * inner / float64(freq) * trough

	p := &Path{}
	p.MoveTo(PointOnCircle(c, r, 0))
	for k := 0; k < freq; k++ {
		peakA := period * float64(k)
		valleyA := peakA + period/2
		nextPeakA := peakA + period

		peak := PointOnCircle(c, r, peakA)
		valley := PointOnCircle(c, inner, valleyA)
		nextPeak := PointOnCircle(c, r, nextPeakA)

		p.CubicTo(
			offset(peak, tangentAt(peakA), crestLen),
			offset(valley, tangentAt(valleyA), -troughLen),
			valley,
		)
		p.CubicTo(
			offset(valley, tangentAt(valleyA), troughLen),
			offset(nextPeak, tangentAt(nextPeakA), -crestLen),
			nextPeak,
		)
	}
	p.Close()
	return p
}

// HollowWaveRing overlays two wave rings, the second on a square inset by
// Thickness*R per side, and fills even-odd: a wavy-edged band instead of a
// wavy disc. Both edges share the wave parameters, so crests align.
type HollowWaveRing struct {
	WaveRing
	// Thickness is the band's radial depth as a fraction of the outer
	// radius. Default 0.2, clamped to (0.01, 0.99).
	Thickness float64
}

// Path returns outer and inner contours in one path for even-odd filling.
func (h HollowWaveRing) Path(bounds Rect) *Path {
	th := ratioOrDefault(h.Thickness, 0.2, 0.01, 0.99)
	sq := bounds.CenteredSquare()
	r := sq.Width / 2

	p := h.WaveRing.Path(sq)
	p.Append(h.WaveRing.Path(sq.Inset(th * r)))
	return p
}
