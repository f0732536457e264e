package birdloader

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// meshCommand is one mesh ready for submission: its node and the tint with
// world alpha baked in.
type meshCommand struct {
	node *Node
	tint Color
}

// drawTree draws every visible mesh below root in paint order. parent is
// the transform root is drawn under. cmds is reused as the command buffer
// and returned for the next frame.
func drawTree(target *ebiten.Image, root *Node, parent [6]float64, parentAlpha float64, cmds []meshCommand) []meshCommand {
	cmds = collectCommands(cmds, root, parent, parentAlpha)
	for _, cmd := range cmds {
		submitMesh(target, cmd)
	}
	return cmds
}

// collectCommands refreshes world transforms below root and rebuilds the
// command list into cmds[:0].
func collectCommands(cmds []meshCommand, root *Node, parent [6]float64, parentAlpha float64) []meshCommand {
	updateWorldTransform(root, parent, parentAlpha, true)
	return appendCommands(cmds[:0], root)
}

// appendCommands walks the tree in paint order and appends a command for
// each mesh that would put pixels on screen. Invisible subtrees are skipped.
func appendCommands(cmds []meshCommand, n *Node) []meshCommand {
	if !n.Visible || n.disposed {
		return cmds
	}
	if n.Type == NodeTypeMesh && len(n.Vertices) > 0 && len(n.Indices) > 0 {
		tint := Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * n.worldAlpha}
		if tint.A > 0 {
			cmds = append(cmds, meshCommand{node: n, tint: tint})
		}
	}
	for _, child := range n.children {
		cmds = appendCommands(cmds, child)
	}
	return cmds
}

// submitMesh draws a mesh node using DrawTriangles. Untextured meshes use
// the shared white pixel so the node's Color is the fill.
func submitMesh(target *ebiten.Image, cmd meshCommand) {
	n := cmd.node
	dst := ensureTransformedVerts(n)
	transformVertices(n.Vertices, dst, n.worldTransform, cmd.tint)

	img := n.MeshImage
	if img == nil {
		img = ensureWhitePixel()
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true
	target.DrawTriangles(dst, n.Indices, img, &triOp)
}

// Draw renders the loader onto target. Use it when the loader is not part
// of a Scene; inside a Scene, Scene.Draw already covers it.
func (l *Loader) Draw(target *ebiten.Image) {
	parent, alpha := identityTransform, 1.0
	if p := l.node.Parent; p != nil {
		parent, alpha = p.worldTransform, p.worldAlpha
	}
	l.commands = drawTree(target, l.node, parent, alpha, l.commands)
}
