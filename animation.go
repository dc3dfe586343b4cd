package garland

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the Node tween methods (TweenPosition, TweenScale,
// TweenRotation, TweenAlpha) and call Update(dt) each frame. The group
// auto-applies values and marks the node dirty. If the target node is
// disposed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that animates the node's X and Y to the
// given target coordinates over the specified duration using the easing function.
func (n *Node) TweenPosition(toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: n}
	g.tweens[0] = gween.New(float32(n.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(n.Y), float32(toY), duration, fn)
	g.fields[0] = &n.X
	g.fields[1] = &n.Y
	return g
}

// TweenScale creates a TweenGroup that animates the node's ScaleX and ScaleY
// to the given target values over the specified duration using the easing function.
func (n *Node) TweenScale(toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: n}
	g.tweens[0] = gween.New(float32(n.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(n.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &n.ScaleX
	g.fields[1] = &n.ScaleY
	return g
}

// TweenRotation creates a TweenGroup that animates the node's Rotation to the
// target value over the specified duration using the easing function.
func (n *Node) TweenRotation(to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: n}
	g.tweens[0] = gween.New(float32(n.Rotation), float32(to), duration, fn)
	g.fields[0] = &n.Rotation
	return g
}

// TweenAlpha creates a TweenGroup that animates the node's Alpha to the target
// value over the specified duration using the easing function.
func (n *Node) TweenAlpha(to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: n}
	g.tweens[0] = gween.New(float32(n.Alpha), float32(to), duration, fn)
	g.fields[0] = &n.Alpha
	return g
}
