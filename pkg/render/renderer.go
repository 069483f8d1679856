package render

import (
	"math"

	"github.com/facet3d/facet/pkg/math3d"
	"github.com/facet3d/facet/pkg/mesh"
)

// Renderer draws a mesh onto a surface. Implementations hold their
// projector and style colors as mutable configuration and are constructed
// once, then reused across render calls.
//
// Render always clears the surface first so stale geometry never remains,
// and the resulting draw-call sequence is deterministic for a fixed mesh,
// projector and surface size.
type Renderer interface {
	Render(m *mesh.Mesh, dst Surface) error
}

// fitToSurface maps normalized [-1,1] vertices into canvas coordinates:
// X and Y are scaled by 0.35 * min(w, h) and centered, so the object
// occupies roughly the central 70% of the shorter canvas dimension. Z is
// scaled by the same factor but not translated, since depth ordering and
// face normals are computed from these scaled, pre-projection coordinates.
func fitToSurface(vertices []math3d.Vec3, w, h int) []math3d.Vec3 {
	s := 0.35 * math.Min(float64(w), float64(h))
	cx, cy := float64(w)/2, float64(h)/2
	out := make([]math3d.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = math3d.V3(v.X*s+cx, v.Y*s+cy, v.Z*s)
	}
	return out
}

// facePolygon collects the projected corners of a face.
func facePolygon(projected []math3d.Vec2, face [3]int) []math3d.Vec2 {
	return []math3d.Vec2{projected[face[0]], projected[face[1]], projected[face[2]]}
}
