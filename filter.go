package garland

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is the interface for visual effects applied to a node's rendered output.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to accommodate
	// the effect (e.g. glow radius). Zero means no padding.
	Padding() int
}

// --- Kage shader sources ---
// All shaders use //kage:unit pixels as required by Ebitengine.
// Ebitengine uses premultiplied alpha; both shaders operate on premultiplied
// values directly (band darkening and additive accumulation are both
// premultiply-safe).

const scanlineShaderSrc = `//kage:unit pixels
package main

var Spacing float
var Darkness float
var Phase float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	// Alternate Spacing-pixel bands; darken every other one.
	band := mod(dst.y+Phase, Spacing*2.0)
	if band < Spacing {
		c.rgb *= 1.0 - Darkness
	}
	return c
}
`

const glowShaderSrc = `//kage:unit pixels
package main

var Radius float
var Strength float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	sum := vec4(0)
	// Fixed 12-tap ring at Radius; pi/6 per tap.
	for i := 0; i < 12; i++ {
		a := float(i) * 0.5235987755982988
		sum += imageSrc0At(src + vec2(cos(a), sin(a))*Radius)
	}
	return min(c+sum*(Strength/12.0), vec4(1))
}
`

// --- Lazy shader compilation (no sync.Once; garland is single-threaded) ---

var (
	scanlineShader *ebiten.Shader
	glowShader     *ebiten.Shader
)

func ensureScanlineShader() *ebiten.Shader {
	if scanlineShader == nil {
		s, err := ebiten.NewShader([]byte(scanlineShaderSrc))
		if err != nil {
			panic("garland: failed to compile scanline shader: " + err.Error())
		}
		scanlineShader = s
	}
	return scanlineShader
}

func ensureGlowShader() *ebiten.Shader {
	if glowShader == nil {
		s, err := ebiten.NewShader([]byte(glowShaderSrc))
		if err != nil {
			panic("garland: failed to compile glow shader: " + err.Error())
		}
		glowShader = s
	}
	return glowShader
}

// --- ScanlineFilter ---

// ScanlineFilter darkens every other horizontal band of Spacing pixels, the
// CRT look. Animate Phase to make the bands drift.
type ScanlineFilter struct {
	// Spacing is the band height in pixels. Default 4.
	Spacing float64
	// Darkness is how much the dark bands are dimmed. Default 0.35,
	// clamped to [0, 1].
	Darkness float64
	// Phase scrolls the band pattern vertically, in pixels.
	Phase float64

	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewScanlineFilter creates a scanline filter with the default band layout.
func NewScanlineFilter() *ScanlineFilter {
	return &ScanlineFilter{uniforms: make(map[string]any, 3)}
}

// Apply renders the banded darkening from src into dst.
func (f *ScanlineFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureScanlineShader()
	spacing := f.Spacing
	if spacing == 0 {
		spacing = 4
	}
	darkness := f.Darkness
	if darkness == 0 {
		darkness = 0.35
	}
	darkness = clampFloat(darkness, 0, 1)

	if f.uniforms == nil {
		f.uniforms = make(map[string]any, 3)
	}
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	f.uniforms["Spacing"] = float32(spacing)
	f.uniforms["Darkness"] = float32(darkness)
	f.uniforms["Phase"] = float32(f.Phase)

	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}

// Padding returns 0; scanlines don't expand the image bounds.
func (f *ScanlineFilter) Padding() int { return 0 }

// --- GlowFilter ---

// GlowFilter adds a soft additive halo: the shader samples a fixed 12-tap
// ring at Radius around each pixel and adds the Strength-weighted average to
// the source.
type GlowFilter struct {
	// Radius is the halo reach in pixels. Default 6, clamped to [1, 16].
	Radius float64
	// Strength scales the halo contribution. Default 0.6.
	Strength float64

	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewGlowFilter creates a glow filter with the default halo.
func NewGlowFilter() *GlowFilter {
	return &GlowFilter{uniforms: make(map[string]any, 2)}
}

func (f *GlowFilter) radius() float64 {
	r := f.Radius
	if r == 0 {
		r = 6
	}
	return clampFloat(r, 1, 16)
}

// Apply renders the halo from src into dst.
func (f *GlowFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureGlowShader()
	strength := f.Strength
	if strength == 0 {
		strength = 0.6
	}

	if f.uniforms == nil {
		f.uniforms = make(map[string]any, 2)
	}
	f.uniforms["Radius"] = float32(f.radius())
	f.uniforms["Strength"] = float32(strength)

	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}

// Padding returns the halo reach; the offscreen buffer is expanded so the
// glow isn't clipped at the subtree bounds.
func (f *GlowFilter) Padding() int { return int(math.Ceil(f.radius())) }

// --- Filter chain helpers ---

// filterChainPadding returns the cumulative padding required by a slice of
// filters. Padding is cumulative: the offscreen is sized to accommodate the
// sum of all filters' Padding() values.
func filterChainPadding(filters []Filter) int {
	pad := 0
	for _, f := range filters {
		pad += f.Padding()
	}
	return pad
}

// applyFilters runs a filter chain on src, ping-ponging between two images.
// Returns the image containing the final result (either src or a pooled
// scratch image). The caller must release the result if it differs from src.
func applyFilters(filters []Filter, src *ebiten.Image, pool *OffscreenPool) *ebiten.Image {
	if len(filters) == 0 {
		return src
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	current := src
	var scratch *ebiten.Image

	for _, f := range filters {
		if scratch == nil {
			scratch = pool.Acquire(w, h)
		} else {
			scratch.Clear()
		}
		f.Apply(current, scratch)
		current, scratch = scratch, current
	}

	if scratch != nil && scratch != src {
		pool.Release(scratch)
	}
	return current
}
