package garland

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// CenteredSquare returns the largest axis-aligned square centered in r.
// The side is min(Width, Height). Applying it to an already-square rect
// returns the same rect, so the operation is idempotent.
func (r Rect) CenteredSquare() Rect {
	side := math.Min(r.Width, r.Height)
	return Rect{
		X:      r.X + (r.Width-side)/2,
		Y:      r.Y + (r.Height-side)/2,
		Width:  side,
		Height: side,
	}
}

// Inset returns the rectangle shrunk by d on every side. A d larger than
// half the width or height collapses that axis to zero rather than going
// negative.
func (r Rect) Inset(d float64) Rect {
	w := r.Width - 2*d
	h := r.Height - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// rectUnion returns the smallest Rect containing both a and b.
func rectUnion(a, b Rect) Rect {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.Width, b.X+b.Width)
	maxY := math.Max(a.Y+a.Height, b.Y+b.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// PointOnCircle returns the point at the given angle (radians) and radius
// from center. Angles are measured from the positive X axis, increasing
// toward positive Y (clockwise on screen). Zero radians points at 3 o'clock.
func PointOnCircle(center Vec2, radius, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin}
}

// Shape is the single contract every generator implements: given a bounding
// rectangle, produce a fresh path. Generators are stateless value types (the
// randomized ones resolve their geometry at construction), so Path may be
// called from any frame without side effects. Ownership of the returned path
// transfers entirely to the caller.
type Shape interface {
	Path(bounds Rect) *Path
}

// --- Parameter clamping ---
// Generators never fail on bad input: counts floor to their minimum and
// ratios clamp into their documented sub-range. A zero value means "use the
// documented default".

// clampFloat clamps v into [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floorInt returns v, or min when v is below it.
func floorInt(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// ratioOrDefault substitutes def for a zero ratio, then clamps into [lo, hi].
func ratioOrDefault(v, def, lo, hi float64) float64 {
	if v == 0 {
		v = def
	}
	return clampFloat(v, lo, hi)
}

// countOrDefault substitutes def for a zero count, then floors at min.
func countOrDefault(v, def, min int) int {
	if v == 0 {
		v = def
	}
	return floorInt(v, min)
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendClip                      // source-atop (paint only where destination alpha exists)
	BlendBelow                     // destination-over (draw behind existing content)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendClip:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationAlpha,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendBelow:
		return ebiten.BlendDestinationOver
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}
