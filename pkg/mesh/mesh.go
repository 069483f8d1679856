// Package mesh provides the triangular-mesh object model for facet.
package mesh

import (
	"errors"
	"fmt"

	"github.com/facet3d/facet/pkg/math3d"
)

// ErrFaceIndexOutOfRange reports a face referencing a vertex that does not
// exist. Wrapped errors carry the offending face and index.
var ErrFaceIndexOutOfRange = errors.New("mesh: face references vertex out of range")

// Mesh represents a 3D object as a triangular mesh.
//
// Vertices are indexed by position; each face holds three indices into the
// vertex slice. Faces are not required to be non-degenerate or
// non-intersecting. A Mesh is mutated in place by Normalize and Rotate and
// is not safe for concurrent use.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    [][3]int
}

// New creates a mesh from the given vertices and faces. The slices are
// retained, not copied.
func New(name string, vertices []math3d.Vec3, faces [][3]int) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Faces:    faces,
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of triangular faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Validate checks that every face index is within [0, VertexCount).
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrFaceIndexOutOfRange, i, v, n)
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh has a zero bounding box.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}

// Normalize translates the mesh so its bounding-box center sits at the
// origin, then uniformly scales it so all coordinates lie within [-1, 1].
// A mesh that collapses to a single point is centered but not scaled.
// Applying Normalize twice is idempotent up to floating-point error.
func (m *Mesh) Normalize() {
	if len(m.Vertices) == 0 {
		return
	}
	center := m.Center()
	scale := 0.0
	for i, v := range m.Vertices {
		v = v.Sub(center)
		m.Vertices[i] = v
		if c := v.Abs().MaxComponent(); c > scale {
			scale = c
		}
	}
	if scale == 0 {
		return
	}
	inv := 1 / scale
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Scale(inv)
	}
}

// Rotate rotates every vertex about the origin by the combined
// Rz(yaw)·Ry(pitch)·Rx(roll) matrix, applied as a row-vector right
// multiply. Sequential calls compose multiplicatively: each call rotates
// the current vertex positions by the new delta.
func (m *Mesh) Rotate(yaw, pitch, roll float64) {
	rot := math3d.RotationZYX(yaw, pitch, roll)
	for i := range m.Vertices {
		m.Vertices[i] = rot.Apply(m.Vertices[i])
	}
}

// FlipY negates every Y coordinate. Display copies use this to match
// canvas coordinates, where Y grows downward.
func (m *Mesh) FlipY() {
	for i := range m.Vertices {
		m.Vertices[i].Y = -m.Vertices[i].Y
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:     m.Name,
		Vertices: make([]math3d.Vec3, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
