package garland

import "math"

// Radial placement of the spoke slots and the center hole, as fractions of
// the gear's root radius. Slots stay clear of the teeth above and the hub
// below; the hole fits inside the hub.
const (
	gearSlotOuter  = 0.85
	gearSlotInner  = 0.35
	gearHoleRadius = 0.15
)

// GearRing is a classic gear silhouette: a closed trapezoidal-tooth outline,
// optionally hollowed out with rounded spoke slots and a center hole.
// A filled shape; cutouts rely on the even-odd rule.
type GearRing struct {
	// Teeth is the tooth count. Default 8, floor 2.
	Teeth int
	// Depth is the tooth height as a fraction of the radius: tooth tips sit
	// at R, roots at R*(1-Depth). Default 0.25, clamped to (0.01, 0.99).
	Depth float64
	// Spokes cuts that many slots between hub and rim. Values below 2 leave
	// a solid body (a single slot would unbalance the wheel).
	Spokes int
	// SpokeWidth is the fraction of each slot sector kept as solid spoke.
	// Default 0.35, clamped to (0.01, 0.99).
	SpokeWidth float64
	// CenterHole punches a circular hole of gearHoleRadius*root radius.
	// Works with or without spokes.
	CenterHole bool
}

// Path emits the tooth outline as one closed contour of exactly 4*Teeth
// vertices, then the slot and hole contours when enabled.
func (g GearRing) Path(bounds Rect) *Path {
	teeth := countOrDefault(g.Teeth, 8, 2)
	depth := ratioOrDefault(g.Depth, 0.25, 0.01, 0.99)

	c, r := ringBasis(bounds)
	root := r * (1 - depth)

	p := &Path{}
	toothAngle := 2 * math.Pi / float64(teeth)
	quarter := toothAngle / 4

	// Tooth profile: tip, tip, root, root at quarter-angle steps.
	p.MoveTo(PointOnCircle(c, r, 0))
	for k := 0; k < teeth; k++ {
		base := toothAngle * float64(k)
		if k > 0 {
			p.LineTo(PointOnCircle(c, r, base))
		}
		p.LineTo(PointOnCircle(c, r, base+quarter))
		p.LineTo(PointOnCircle(c, root, base+2*quarter))
		p.LineTo(PointOnCircle(c, root, base+3*quarter))
	}
	p.Close()

	if g.Spokes >= 2 {
		g.cutSlots(p, c, root, g.Spokes)
	}
	if g.CenterHole {
		hole := root * gearHoleRadius
		p.MoveTo(PointOnCircle(c, hole, 0))
		p.Arc(c, hole, 0, 2*math.Pi, true)
		p.Close()
	}
	return p
}

// cutSlots appends one rounded-slot contour per spoke sector: outer arc
// forward, line down the wall, inner arc backward, close. Even-odd filling
// subtracts them from the body.
func (g GearRing) cutSlots(p *Path, c Vec2, root float64, spokes int) {
	width := ratioOrDefault(g.SpokeWidth, 0.35, 0.01, 0.99)
	sector := 2 * math.Pi / float64(spokes)
	pad := width * sector / 2

	outer := root * gearSlotOuter
	inner := root * gearSlotInner
	for j := 0; j < spokes; j++ {
		start := sector*float64(j) + pad
		end := sector*float64(j+1) - pad
		p.MoveTo(PointOnCircle(c, outer, start))
		p.Arc(c, outer, start, end, true)
		p.LineTo(PointOnCircle(c, inner, end))
		p.Arc(c, inner, end, start, false)
		p.Close()
	}
}
