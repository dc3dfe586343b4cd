package garland

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Style controls how a shape node renders its path. Fill is drawn when
// Fill.A > 0; the stroke is drawn on top when Stroke.A > 0 and
// StrokeWidth > 0. A node may carry both.
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	Cap         vector.LineCap
	Blend       BlendMode
}

// nodeIDCounter is a plain counter (no atomic; garland is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene element: either a plain group or a shape carrier. A single
// flat struct is used for both to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed (unexported, refreshed by Layer.Update)
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility
	Alpha   float64
	Visible bool

	// Ordering among siblings
	ZIndex int

	// Shape fields (nil Shape = group node)
	Shape Shape
	// Size is the side of the square the shape's path is generated into.
	Size  float64
	Style Style

	// Filters post-process this node's rendered subtree.
	Filters []Filter

	// Metadata
	UserData any

	// Mesh caches, rebuilt lazily when shapeDirty or the style changes in a
	// way the tessellation depends on.
	fillVerts   []ebiten.Vertex
	fillInds    []uint16
	strokeVerts []ebiten.Vertex
	strokeInds  []uint16
	meshAABB    Rect
	shapeDirty  bool
	meshedStyle meshStyleKey

	transformedVerts []ebiten.Vertex // preallocated transform buffer

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewGroup creates a container node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewShapeNode creates a node rendering the given shape into a size x size
// square. The pivot defaults to the square's center, so rotation spins the
// ring in place and (X, Y) positions its center.
func NewShapeNode(name string, shape Shape, size float64) *Node {
	n := &Node{
		Name:       name,
		Shape:      shape,
		Size:       size,
		PivotX:     size / 2,
		PivotY:     size / 2,
		shapeDirty: true,
	}
	n.Style.Stroke = ColorWhite
	n.Style.StrokeWidth = 1
	nodeDefaults(n)
	return n
}

// MarkShapeDirty invalidates the cached tessellation. Call after mutating
// the node's Shape parameters or Size so the next draw rebuilds the mesh;
// Style edits are picked up automatically.
func (n *Node) MarkShapeDirty() {
	n.shapeDirty = true
}

// meshStyleKey is the subset of Style the tessellation depends on. Colors
// and blend only tint at draw time and never force a rebuild.
type meshStyleKey struct {
	fill, stroke bool
	strokeWidth  float64
	lineCap      vector.LineCap
}

func (s Style) meshKey() meshStyleKey {
	return meshStyleKey{
		fill:        s.Fill.A > 0,
		stroke:      s.Stroke.A > 0 && s.StrokeWidth > 0,
		strokeWidth: s.StrokeWidth,
		lineCap:     s.Cap,
	}
}

// ensureMesh rebuilds the fill and stroke meshes from the shape's path if
// the cache is stale.
func (n *Node) ensureMesh() {
	if n.Shape == nil {
		return
	}
	key := n.Style.meshKey()
	if !n.shapeDirty && key == n.meshedStyle {
		return
	}
	p := n.Shape.Path(Rect{Width: n.Size, Height: n.Size})

	n.fillVerts = n.fillVerts[:0]
	n.fillInds = n.fillInds[:0]
	n.strokeVerts = n.strokeVerts[:0]
	n.strokeInds = n.strokeInds[:0]

	if n.Style.Fill.A > 0 {
		n.fillVerts, n.fillInds = fillMesh(p)
	}
	if n.Style.Stroke.A > 0 && n.Style.StrokeWidth > 0 {
		n.strokeVerts, n.strokeInds = strokeMesh(p, n.Style.StrokeWidth, n.Style.Cap)
	}

	switch {
	case len(n.fillVerts) == 0:
		n.meshAABB = computeMeshAABB(n.strokeVerts)
	case len(n.strokeVerts) == 0:
		n.meshAABB = computeMeshAABB(n.fillVerts)
	default:
		n.meshAABB = rectUnion(computeMeshAABB(n.fillVerts), computeMeshAABB(n.strokeVerts))
	}
	n.meshedStyle = key
	n.shapeDirty = false
}

// ensureTransformedVerts grows the node's transform buffer to fit need
// vertices, using a high-water-mark strategy (never shrinks).
func (n *Node) ensureTransformedVerts(need int) []ebiten.Vertex {
	if cap(n.transformedVerts) < need {
		n.transformedVerts = make([]ebiten.Vertex, need)
	}
	n.transformedVerts = n.transformedVerts[:need]
	return n.transformedVerts
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("garland: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("garland: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node. No-op if child is not ours.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.Parent != n {
		return
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// Children returns the node's children in insertion order. The slice is
// owned by the node; callers must not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// Dispose detaches the node from its parent and releases its buffers. Using
// a disposed node in tree operations panics in debug mode.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	for _, child := range n.children {
		child.Parent = nil
		child.Dispose()
	}
	n.disposed = true
	n.children = nil
	n.sortedChildren = nil
	n.Shape = nil
	n.Filters = nil
	n.UserData = nil
	n.fillVerts = nil
	n.fillInds = nil
	n.strokeVerts = nil
	n.strokeInds = nil
	n.transformedVerts = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted (O(n) when already sorted).
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// drawOrder returns the node's children in ZIndex order, rebuilding the
// sorted buffer only when the child list changed.
func (n *Node) drawOrder() []*Node {
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		return n.sortedChildren
	}
	return n.children
}
