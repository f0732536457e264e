package birdloader

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenX,
// TweenRotation, TweenAlpha) and call Update(dt) each frame. The group
// auto-applies values and marks the node dirty. If the target node is
// disposed, the group stops immediately.
//
// Start values are captured when the group begins moving, i.e. after Delay
// has elapsed, so a group scheduled behind another animation picks up
// wherever that animation left the field. Final values are held.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens   [2]*gween.Tween
	count    int
	fields   [2]*float64
	from     [2]float32
	to       [2]float32
	duration float32
	fn       ease.TweenFunc
	target   *Node
	started  bool

	// Delay is the time in seconds to wait before the group starts moving.
	Delay float32
	// AutoReverse plays the group back to its start values after reaching
	// the targets. The reverse leg takes the same duration.
	AutoReverse bool
	reversing   bool

	// OnComplete is called once when the group ends. finished is false when
	// the group was cancelled or its node disposed before reaching the end.
	OnComplete func(finished bool)

	Done bool
}

func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{target: node, duration: duration, fn: fn}
}

func (g *TweenGroup) bind(field *float64, to float64) {
	g.fields[g.count] = field
	g.to[g.count] = float32(to)
	g.count++
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, the group
// ends unfinished and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.finish(false)
		return
	}

	if g.Delay > 0 {
		g.Delay -= dt
		if g.Delay > 0 {
			return
		}
		dt = -g.Delay
		g.Delay = 0
	}

	if !g.started {
		g.start()
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}

	if g.target != nil {
		g.target.MarkDirty()
	}

	if !allDone {
		return
	}
	if g.AutoReverse && !g.reversing {
		g.reversing = true
		for i := 0; i < g.count; i++ {
			g.tweens[i] = gween.New(g.to[i], g.from[i], g.duration, g.fn)
		}
		return
	}
	g.finish(true)
}

func (g *TweenGroup) start() {
	for i := 0; i < g.count; i++ {
		g.from[i] = float32(*g.fields[i])
		g.tweens[i] = gween.New(g.from[i], g.to[i], g.duration, g.fn)
	}
	g.started = true
}

// Started reports whether the group's delay has elapsed.
func (g *TweenGroup) Started() bool {
	return g.started
}

// Cancel ends the group where it is. OnComplete fires with finished=false.
// No-op once the group is done.
func (g *TweenGroup) Cancel() {
	if g.Done {
		return
	}
	g.finish(false)
}

func (g *TweenGroup) finish(finished bool) {
	g.Done = true
	if g.OnComplete != nil {
		g.OnComplete(finished)
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.bind(&node.X, toX)
	g.bind(&node.Y, toY)
	return g
}

// TweenX creates a TweenGroup that animates node.X only.
func TweenX(node *Node, toX float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.bind(&node.X, toX)
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.bind(&node.Alpha, to)
	return g
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.bind(&node.Rotation, to)
	return g
}
