package birdloader

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// svgScale is the number of SVG user units per loader pixel. svgo takes
// integer coordinates, so the drawing is scaled up and shrunk back with a
// viewBox.
const svgScale = 16

// errWriter remembers the first write error so it can be reported after the
// svgo calls, which do not return errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG writes the loader's current frame as a standalone SVG document
// sized to its bounds. Regions are written in paint order with their
// current rotation, eye offset and beard opacity applied. Before layout the
// document is empty.
func (l *Loader) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width := math.Max(0, l.bounds.Width)
	height := math.Max(0, l.bounds.Height)
	canvas.Startview(int(math.Ceil(width)), int(math.Ceil(height)),
		0, 0, int(math.Ceil(width*svgScale)), int(math.Ceil(height*svgScale)))

	if l.built {
		base := [6]float64{svgScale, 0, 0, svgScale, width / 2 * svgScale, height / 2 * svgScale}
		for _, n := range l.regionNodes {
			writeSVGPolygon(canvas, n, multiplyAffine(base, computeLocalTransform(n)))
		}
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func writeSVGPolygon(canvas *svg.SVG, n *Node, m [6]float64) {
	if len(n.Vertices) < 3 || !n.Visible {
		return
	}
	xs := make([]int, len(n.Vertices))
	ys := make([]int, len(n.Vertices))
	for i, v := range n.Vertices {
		x, y := transformPoint(m, float64(v.DstX), float64(v.DstY))
		xs[i] = int(math.Round(x))
		ys[i] = int(math.Round(y))
	}
	c := n.Color
	style := fmt.Sprintf("%s;fill-opacity:%.3f",
		canvas.RGB(channel8(c.R), channel8(c.G), channel8(c.B)), clamp01(c.A*n.Alpha))
	canvas.Polygon(xs, ys, style)
}

func channel8(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}
