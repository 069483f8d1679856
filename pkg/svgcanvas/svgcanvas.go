// Package svgcanvas provides an SVG-emitting drawing surface, used to
// export the current view as a vector snapshot.
package svgcanvas

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/facet3d/facet/pkg/math3d"
	"github.com/facet3d/facet/pkg/render"
)

// Canvas implements render.Surface by recording primitives and emitting an
// SVG document on Close. Recording makes Clear possible: SVG output is
// append-only, so draws are buffered until the document is finalized.
type Canvas struct {
	out    io.Writer
	width  int
	height int
	ops    []func(*svg.SVG)
}

// New creates an SVG canvas of the given size writing to out.
func New(out io.Writer, width, height int) *Canvas {
	return &Canvas{out: out, width: width, height: height}
}

// Size implements render.Surface.
func (c *Canvas) Size() (w, h int) {
	return c.width, c.height
}

// Clear implements render.Surface by dropping all recorded primitives.
func (c *Canvas) Clear() {
	c.ops = c.ops[:0]
}

// DrawPoint implements render.Surface. Points become small filled circles.
func (c *Canvas) DrawPoint(x, y float64, clr render.Color) {
	fill := fmt.Sprintf(`fill="%s"`, render.Hex(clr))
	c.ops = append(c.ops, func(s *svg.SVG) {
		s.Circle(round(x), round(y), 2, fill)
	})
}

// DrawLine implements render.Surface.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, clr render.Color) {
	style := fmt.Sprintf(`stroke="%s"`, render.Hex(clr))
	c.ops = append(c.ops, func(s *svg.SVG) {
		s.Line(round(x1), round(y1), round(x2), round(y2), style)
	})
}

// DrawPolygon implements render.Surface.
func (c *Canvas) DrawPolygon(pts []math3d.Vec2, outline, fill render.Color) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i] = round(p.X)
		ys[i] = round(p.Y)
	}
	fillAttr := `fill="none"`
	if fill.A != 0 {
		fillAttr = fmt.Sprintf(`fill="%s"`, render.Hex(fill))
	}
	style := fmt.Sprintf(`stroke="%s" %s`, render.Hex(outline), fillAttr)
	c.ops = append(c.ops, func(s *svg.SVG) {
		s.Polygon(xs, ys, style)
	})
}

// Close writes the recorded primitives as a complete SVG document.
func (c *Canvas) Close() error {
	doc := svg.New(c.out)
	doc.Start(c.width, c.height)
	for _, op := range c.ops {
		op(doc)
	}
	doc.End()
	return nil
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
