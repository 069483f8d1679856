package render

import (
	"math"
	"sort"

	"github.com/facet3d/facet/pkg/math3d"
	"github.com/facet3d/facet/pkg/mesh"
)

// FlatShaded renders meshes with the painter's algorithm: faces are sorted
// back to front by average depth and drawn as filled polygons whose color
// follows the face's orientation toward the viewer.
//
// The depth sort reorders the mesh's face list in place; the sorted order
// becomes the mesh's new canonical face order. Intersecting geometry is
// not handled correctly (inherent painter's-algorithm limitation).
type FlatShaded struct {
	Proj        Projector
	VertexColor Color
	EdgeColor   Color

	// BrightFace colors faces parallel to the screen, DarkFace colors
	// faces edge-on to it; orientations in between interpolate.
	BrightFace Color
	DarkFace   Color
}

// NewFlatShaded creates a flat-shaded renderer with blue default colors.
func NewFlatShaded(proj Projector) *FlatShaded {
	return &FlatShaded{
		Proj:        proj,
		VertexColor: ColorBlue,
		EdgeColor:   ColorBlue,
		BrightFace:  RGB(0x00, 0x00, 0xFF),
		DarkFace:    RGB(0x00, 0x00, 0x5F),
	}
}

// Render implements Renderer.
func (r *FlatShaded) Render(m *mesh.Mesh, dst Surface) error {
	if err := m.Validate(); err != nil {
		return err
	}

	w, h := dst.Size()
	dst.Clear()
	if m.VertexCount() == 0 {
		return nil
	}

	vertices := fitToSurface(m.Vertices, w, h)
	sortFacesByDepth(m, vertices)

	projected, err := r.Proj.Project(vertices)
	if err != nil {
		return err
	}

	for _, p := range projected {
		dst.DrawPoint(p.X, p.Y, r.VertexColor)
	}
	for _, face := range m.Faces {
		alpha := faceAlpha(vertices[face[0]], vertices[face[1]], vertices[face[2]])
		fill := Fade(r.BrightFace, r.DarkFace, alpha)
		dst.DrawPolygon(facePolygon(projected, face), r.EdgeColor, fill)
	}
	return nil
}

// sortFacesByDepth reorders the mesh's faces in place so faces with larger
// average Z (farther from the viewer in this coordinate convention) come
// first and nearer faces are drawn last. The sort is stable: ties keep
// their original relative order, for reproducible output.
func sortFacesByDepth(m *mesh.Mesh, vertices []math3d.Vec3) {
	keys := make([]float64, len(m.Faces))
	for i, f := range m.Faces {
		keys[i] = (vertices[f[0]].Z + vertices[f[1]].Z + vertices[f[2]].Z) / 3
	}
	order := make([]int, len(m.Faces))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] > keys[order[b]]
	})
	sorted := make([][3]int, len(m.Faces))
	for i, idx := range order {
		sorted[i] = m.Faces[idx]
	}
	copy(m.Faces, sorted)
}

// faceAlpha derives the shading parameter from the face's unit normal: the
// absolute Z component, 1 for faces parallel to the screen and 0 for faces
// edge-on. Zero-area faces have no defined normal and fall back to 0.
func faceAlpha(p1, p2, p3 math3d.Vec3) float64 {
	u := p2.Sub(p1)
	v := p3.Sub(p1)
	n := u.Cross(v)
	l := n.Len()
	if l == 0 {
		return 0
	}
	return math.Abs(n.Z / l)
}
