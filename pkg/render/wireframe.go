package render

import (
	"github.com/facet3d/facet/pkg/mesh"
)

// Wireframe renders meshes as vertex points and unfilled face outlines.
// Faces are drawn in the mesh's stored order; wireframe output has no
// depth dependency, so no sorting is performed.
type Wireframe struct {
	Proj        Projector
	VertexColor Color
	EdgeColor   Color
}

// NewWireframe creates a wireframe renderer with blue default colors.
func NewWireframe(proj Projector) *Wireframe {
	return &Wireframe{
		Proj:        proj,
		VertexColor: ColorBlue,
		EdgeColor:   ColorBlue,
	}
}

// Render implements Renderer.
func (r *Wireframe) Render(m *mesh.Mesh, dst Surface) error {
	if err := m.Validate(); err != nil {
		return err
	}

	w, h := dst.Size()
	dst.Clear()
	if m.VertexCount() == 0 {
		return nil
	}

	vertices := fitToSurface(m.Vertices, w, h)
	projected, err := r.Proj.Project(vertices)
	if err != nil {
		return err
	}

	for _, p := range projected {
		dst.DrawPoint(p.X, p.Y, r.VertexColor)
	}
	for _, face := range m.Faces {
		dst.DrawPolygon(facePolygon(projected, face), r.EdgeColor, NoFill)
	}
	return nil
}
