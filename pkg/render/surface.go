// Package render turns a triangular mesh plus a projection policy into an
// ordered sequence of 2D draw calls on a Surface.
package render

import "github.com/facet3d/facet/pkg/math3d"

// Surface is the 2D drawing capability a renderer targets. It is owned by
// the presentation layer (terminal cells, a desktop window, an SVG file)
// and injected into the renderer per render call.
//
// Implementations are not required to be safe for concurrent use; the
// pipeline is single-threaded and synchronous.
type Surface interface {
	// Size returns the canvas width and height in pixels.
	Size() (w, h int)

	// Clear removes all previously drawn primitives.
	Clear()

	// DrawPoint marks a single vertex position.
	DrawPoint(x, y float64, c Color)

	// DrawLine draws a straight segment between two points.
	DrawLine(x1, y1, x2, y2 float64, c Color)

	// DrawPolygon draws a closed polygon. A fill with zero alpha (NoFill)
	// draws the outline only.
	DrawPolygon(pts []math3d.Vec2, outline, fill Color)
}
