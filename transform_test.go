package birdloader

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	assertMatrix(t, "identity", computeLocalTransform(n), identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.Y = 20
	assertMatrix(t, "translation", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX = 2
	n.ScaleY = 3
	assertMatrix(t, "scale", computeLocalTransform(n), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	// cos=0, sin=1: a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", computeLocalTransform(n), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewContainer("test")
	n.X = 100
	n.Y = 100
	n.PivotX = 10
	n.PivotY = 10
	n.Rotation = math.Pi

	// The pivot maps onto (X, Y).
	x, y := transformPoint(computeLocalTransform(n), 10, 10)
	assertNear(t, "pivot.x", x, 100)
	assertNear(t, "pivot.y", y, 100)
}

// Positive rotation is clockwise on screen: +X turns toward +Y (down).
func TestRotationIsClockwiseOnScreen(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	x, y := transformPoint(computeLocalTransform(n), 1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 7, 9}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, -5}
	assertMatrix(t, "a*b", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 15})
}

// --- updateWorldTransform ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.tx", parent.worldTransform[4], 100)
	assertNear(t, "child.tx", child.worldTransform[4], 110)
}

func TestRegionRotatesAboutLoaderCenter(t *testing.T) {
	loader := NewContainer("loader")
	region := NewContainer("region")
	loader.AddChild(region)
	loader.SetPosition(50, 50)
	region.SetRotation(math.Pi)

	updateWorldTransform(loader, identityTransform, 1.0, false)

	x, y := region.LocalToWorld(10, 0)
	assertNear(t, "x", x, 40)
	assertNear(t, "y", y, 50)
}

func TestAlphaPropagation(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.Alpha = 0.5
	child.Alpha = 0.5

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.worldAlpha", parent.WorldAlpha(), 0.5)
	assertNear(t, "child.worldAlpha", child.WorldAlpha(), 0.25)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.transformDirty = false
	parent.transformDirty = false
	child.X = 999 // dirty flag not set

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (stale)", child.worldTransform[4], 110)
}

func TestDirtyFlagRecomputes(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.SetPosition(20, 0)
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (updated)", child.WorldTransform()[4], 120)
}

func TestParentRecomputedPropagates(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	parent.SetPosition(200, 0)
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (from parent)", child.worldTransform[4], 210)
}

func TestLocalToWorldIdentity(t *testing.T) {
	n := NewContainer("test")
	n.X = 50
	n.Y = 100
	updateWorldTransform(n, identityTransform, 1.0, true)

	wx, wy := n.LocalToWorld(0, 0)
	assertNear(t, "origin.x", wx, 50)
	assertNear(t, "origin.y", wy, 100)
}

func TestDeepHierarchy(t *testing.T) {
	nodes := make([]*Node, 10)
	for i := range nodes {
		nodes[i] = NewContainer("")
		nodes[i].X = 10
		if i > 0 {
			nodes[i-1].AddChild(nodes[i])
		}
	}

	updateWorldTransform(nodes[0], identityTransform, 1.0, false)

	assertNear(t, "deep.tx", nodes[9].worldTransform[4], 100)
}

func TestSettersDirty(t *testing.T) {
	n := NewContainer("test")
	setters := map[string]func(){
		"SetPosition": func() { n.SetPosition(1, 2) },
		"SetRotation": func() { n.SetRotation(1) },
		"SetAlpha":    func() { n.SetAlpha(0.5) },
		"MarkDirty":   n.MarkDirty,
	}
	for name, set := range setters {
		n.transformDirty = false
		set()
		if !n.transformDirty {
			t.Errorf("%s should set dirty", name)
		}
	}
}
