// Package garland generates decorative parametric ring shapes for [Ebitengine].
//
// Garland builds the vector geometry behind HUD dials, loading spinners, radar
// sweeps and sci-fi ornaments: gauge ticks, streak and broadcast arcs, notched
// tech rings, wave rings, gears, and randomized bursts. Every shape is a small
// parameter struct that produces a [Path] on demand:
//
//	ring := garland.GaugeRing{Ticks: 48, Thickness: 0.2}
//	p := ring.Path(garland.Rect{Width: 200, Height: 200})
//
// A Path is an ordered list of move/line/cubic/arc segments. It carries no
// pixels and no GPU state; rendering happens when a path is tessellated
// through ebiten/v2/vector, either by hand or through the node layer below.
//
// # Drawing shapes
//
// For direct control, replay a path into the host with [Path.AppendTo] and
// fill or stroke it yourself. For the common case, mount shapes in a [Layer]:
//
//	layer := garland.NewLayer()
//	node := garland.NewShapeNode("dial", ring, 200)
//	node.Style.Stroke = garland.Color{R: 0.4, G: 0.9, B: 1, A: 1}
//	node.Style.StrokeWidth = 2
//	layer.Root().AddChild(node)
//
//	// in your ebiten.Game:
//	func (g *Game) Update() error        { g.layer.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.layer.Draw(s) }
//
// Nodes form a tree; children inherit transform and alpha. Shapes are
// tessellated once and cached until a parameter changes
// ([Node.MarkShapeDirty]) or the node is restyled.
//
// # Randomized shapes
//
// SparseStreakRing and BurstRing roll their geometry once, at construction,
// from an injectable math/rand/v2 source. Pass a seeded *rand.Rand for
// reproducible decorations, or nil for the global source:
//
//	rng := rand.New(rand.NewPCG(1, 7))
//	sparse := garland.NewSparseStreakRing(garland.SparseStreakConfig{Layers: 4}, rng)
//
// # Filters and animation
//
// Two Kage pixel-shader filters ship with the package: [ScanlineFilter] and
// [GlowFilter]. Attach them to a node to post-process its subtree. Node
// parameters animate with [gween] through [Node.TweenRotation],
// [Node.TweenAlpha] and friends.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package garland
