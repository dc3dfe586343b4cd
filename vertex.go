package garland

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fillMesh tessellates a path's interior into triangles. The returned
// vertices are in the path's local space with white color; tint and
// transform are applied later by transformVertices. Fills are always drawn
// with ebiten.FillRuleEvenOdd, which the hollow and cutout shapes require
// and which renders single non-overlapping contours identically to non-zero.
func fillMesh(p *Path) ([]ebiten.Vertex, []uint16) {
	var vp vector.Path
	p.AppendTo(&vp)
	return vp.AppendVerticesAndIndicesForFilling(nil, nil)
}

// strokeMesh tessellates a path's outline at the given width.
func strokeMesh(p *Path, width float64, cap vector.LineCap) ([]ebiten.Vertex, []uint16) {
	var vp vector.Path
	p.AppendTo(&vp)
	op := &vector.StrokeOptions{
		Width:   float32(width),
		LineCap: cap,
	}
	return vp.AppendVerticesAndIndicesForStroke(nil, nil, op)
}

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Color components are multiplied (vertex color * tint). The tint's alpha
// already has worldAlpha baked in, so no double-alpha correction is needed.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box in local space.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// transformedAABB transforms the four corners of a local-space rect and
// returns the covering axis-aligned box.
func transformedAABB(m [6]float64, r Rect) Rect {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height

	cx0 := m[0]*x0 + m[2]*y0 + m[4]
	cy0 := m[1]*x0 + m[3]*y0 + m[5]
	cx1 := m[0]*x1 + m[2]*y0 + m[4]
	cy1 := m[1]*x1 + m[3]*y0 + m[5]
	cx2 := m[0]*x1 + m[2]*y1 + m[4]
	cy2 := m[1]*x1 + m[3]*y1 + m[5]
	cx3 := m[0]*x0 + m[2]*y1 + m[4]
	cy3 := m[1]*x0 + m[3]*y1 + m[5]

	minX := min(min(cx0, cx1), min(cx2, cx3))
	minY := min(min(cy0, cy1), min(cy2, cy3))
	maxX := max(max(cx0, cx1), max(cx2, cx3))
	maxY := max(max(cy0, cy1), max(cy2, cy3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// --- White pixel singleton (no sync.Once; garland is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// All untextured triangle draws sample it.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// fillPath tessellates and fills a path onto dst with a flat color and blend.
// The small helper behind BurstRing.Draw and one-off host drawing.
func fillPath(dst *ebiten.Image, p *Path, c Color, blend BlendMode) {
	verts, inds := fillMesh(p)
	if len(verts) == 0 {
		return
	}
	transformVertices(verts, verts, identityTransform, c)
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleEvenOdd,
		AntiAlias: true,
		Blend:     blend.EbitenBlend(),
	}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), op)
}
