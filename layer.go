package garland

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Layer owns a node tree and draws it onto a host surface. It is the thin
// glue between shape nodes and Ebitengine: Update refreshes world transforms
// once per tick, Draw traverses depth-first in sibling ZIndex order and
// submits one DrawTriangles per fill or stroke mesh. Nodes carrying filters
// render their subtree through the layer's offscreen pool first.
type Layer struct {
	root  *Node
	pool  OffscreenPool
	stats frameStats
}

// NewLayer creates a layer with an empty root group.
func NewLayer() *Layer {
	return &Layer{root: NewGroup("root")}
}

// Root returns the layer's root group node.
func (l *Layer) Root() *Node {
	return l.root
}

// Pool returns the layer's offscreen pool, shareable with BurstRing.Draw so
// a host keeps a single set of scratch images.
func (l *Layer) Pool() *OffscreenPool {
	return &l.pool
}

// Update refreshes world transforms and alphas for the whole tree.
// Call once per game tick, before Draw.
func (l *Layer) Update() {
	updateWorldTransform(l.root, identityTransform, 1.0, false)
}

// Draw renders the tree onto dst in painter's order.
func (l *Layer) Draw(dst *ebiten.Image) {
	l.stats = frameStats{}
	l.drawNode(dst, l.root, identityTransform)
	if globalDebug {
		l.stats.poolAcquires = l.pool.acquires
		l.stats.poolHits = l.pool.hits
		debugLogFrame(&l.stats)
	}
}

// drawNode renders one node and recurses. extra is an additional transform
// applied left of the node's world transform; the identity on the main pass,
// an offset when rendering into a filter offscreen.
func (l *Layer) drawNode(dst *ebiten.Image, n *Node, extra [6]float64) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	if len(n.Filters) > 0 {
		l.drawFiltered(dst, n, extra)
		return
	}
	l.drawSelf(dst, n, extra)
	for _, child := range n.drawOrder() {
		l.drawNode(dst, child, extra)
	}
}

// drawSelf submits the node's own meshes.
func (l *Layer) drawSelf(dst *ebiten.Image, n *Node, extra [6]float64) {
	if n.Shape == nil {
		return
	}
	n.ensureMesh()
	transform := multiplyAffine(extra, n.worldTransform)
	l.stats.nodes++

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleEvenOdd,
		AntiAlias: true,
		Blend:     n.Style.Blend.EbitenBlend(),
	}

	if len(n.fillVerts) > 0 {
		tint := n.Style.Fill
		tint.A *= n.worldAlpha
		buf := n.ensureTransformedVerts(len(n.fillVerts))
		transformVertices(n.fillVerts, buf, transform, tint)
		dst.DrawTriangles(buf, n.fillInds, ensureWhitePixel(), op)
		l.stats.vertices += len(buf)
	}
	if len(n.strokeVerts) > 0 {
		tint := n.Style.Stroke
		tint.A *= n.worldAlpha
		buf := n.ensureTransformedVerts(len(n.strokeVerts))
		transformVertices(n.strokeVerts, buf, transform, tint)
		dst.DrawTriangles(buf, n.strokeInds, ensureWhitePixel(), op)
		l.stats.vertices += len(buf)
	}
}

// drawFiltered renders the node's subtree into a pooled offscreen, runs the
// filter chain, and composites the result onto dst.
func (l *Layer) drawFiltered(dst *ebiten.Image, n *Node, extra [6]float64) {
	bounds := l.subtreeWorldAABB(n, extra)
	pad := filterChainPadding(n.Filters)
	bounds.X -= float64(pad)
	bounds.Y -= float64(pad)
	bounds.Width += float64(pad * 2)
	bounds.Height += float64(pad * 2)

	w := int(math.Ceil(bounds.Width))
	h := int(math.Ceil(bounds.Height))
	if w <= 0 || h <= 0 {
		return
	}

	off := l.pool.Acquire(w, h)
	// Shift the subtree so its padded bounds start at the offscreen origin.
	shift := multiplyAffine([6]float64{1, 0, 0, 1, -bounds.X, -bounds.Y}, extra)
	l.drawSelf(off, n, shift)
	for _, child := range n.drawOrder() {
		l.drawNode(off, child, shift)
	}

	result := applyFilters(n.Filters, off, &l.pool)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(bounds.X, bounds.Y)
	op.Blend = n.Style.Blend.EbitenBlend()
	dst.DrawImage(result, &op)

	if result != off {
		l.pool.Release(result)
	}
	l.pool.Release(off)
}

// subtreeWorldAABB unions the transformed mesh bounds of a node and its
// descendants, in the coordinate space extra * world.
func (l *Layer) subtreeWorldAABB(n *Node, extra [6]float64) Rect {
	var bounds Rect
	first := true
	var walk func(m *Node)
	walk = func(m *Node) {
		if !m.Visible {
			return
		}
		if m.Shape != nil {
			m.ensureMesh()
			if m.meshAABB.Width > 0 || m.meshAABB.Height > 0 {
				aabb := transformedAABB(multiplyAffine(extra, m.worldTransform), m.meshAABB)
				if first {
					bounds = aabb
					first = false
				} else {
					bounds = rectUnion(bounds, aabb)
				}
			}
		}
		for _, child := range m.children {
			walk(child)
		}
	}
	walk(n)
	return bounds
}
