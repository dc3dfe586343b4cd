package garland

import "math"

// TechRing is a circle with chamfered notches cut into its edge, the staple
// sci-fi HUD ring. Notch walls are not radial steps but straight bevels: the
// wall between the outer radius R and the notch floor r1 is a chord of fixed
// length sqrt(2)*(R-r1), a 45 degree bevel. The extra angle that chord
// subtends (the transition angle) comes from the law of cosines. A filled
// shape producing a single closed contour.
type TechRing struct {
	// Notches is a flat, even-length list of alternating notch start/end
	// angles in radians, ascending. Lists that are empty, odd-length, or
	// shorter than one pair produce an empty path.
	Notches []float64
	// Inset is the notch depth as a fraction of the radius: the notch floor
	// sits at R*(1-Inset). Default 0.2, clamped to (0.01, 0.99).
	Inset float64
}

// transitionAngle returns the angular offset between a notch wall's top (on
// the outer radius) and its foot (on the floor radius) when the wall is a
// 45 degree bevel chord of length sqrt(2)*(outer-floor).
func transitionAngle(outer, floor float64) float64 {
	chord2 := 2 * (outer - floor) * (outer - floor)
	cos := (outer*outer + floor*floor - chord2) / (2 * outer * floor)
	return math.Acos(clampFloat(cos, -1, 1))
}

// Path walks the rim: out along R to each notch's start, down the bevel to
// the floor, along the floor arc, back up the far bevel, then along R to the
// next notch, closing the loop after the last one.
func (t TechRing) Path(bounds Rect) *Path {
	p := &Path{}
	if len(t.Notches) < 2 || len(t.Notches)%2 != 0 {
		return p
	}
	inset := ratioOrDefault(t.Inset, 0.2, 0.01, 0.99)

	c, r := ringBasis(bounds)
	r1 := r * (1 - inset)
	trans := transitionAngle(r, r1)

	m := len(t.Notches) / 2
	p.MoveTo(PointOnCircle(c, r, t.Notches[0]))
	for k := 0; k < m; k++ {
		s := t.Notches[2*k]
		e := t.Notches[2*k+1]
		// A notch narrower than two transitions has no floor left; pinch the
		// floor arc to the midpoint so the walls meet in a V instead of the
		// arc sweeping the long way around.
		fs, fe := s+trans, e-trans
		if fe < fs {
			fs = (s + e) / 2
			fe = fs
		}
		p.LineTo(PointOnCircle(c, r1, fs))
		p.Arc(c, r1, fs, fe, true)
		p.LineTo(PointOnCircle(c, r, e))
		next := t.Notches[0] + 2*math.Pi
		if k+1 < m {
			next = t.Notches[2*k+2]
		}
		p.Arc(c, r, e, next, true)
	}
	p.Close()
	return p
}

// HollowTechRing composes two independently notched edges into a true ring:
// the outer TechRing on the full square, the inner one on a square inset by
// Thickness*R per side, filled even-odd so the inner silhouette punches
// through. The two edges may carry entirely different notch patterns.
type HollowTechRing struct {
	// Outer and Inner carry the notch pattern for each edge.
	Outer, Inner TechRing
	// Thickness is the ring's radial depth as a fraction of the outer
	// radius. Default 0.25, clamped to (0.01, 0.99).
	Thickness float64
}

// Path returns both contours in one path. Render with the even-odd fill rule
// (the node layer always does).
func (h HollowTechRing) Path(bounds Rect) *Path {
	th := ratioOrDefault(h.Thickness, 0.25, 0.01, 0.99)
	sq := bounds.CenteredSquare()
	r := sq.Width / 2

	p := h.Outer.Path(sq)
	p.Append(h.Inner.Path(sq.Inset(th * r)))
	return p
}
