package render

import (
	"errors"

	"github.com/facet3d/facet/pkg/math3d"
)

var (
	// ErrNotImplemented is returned by projection strategies that exist as
	// documented extension points but have no implementation yet.
	ErrNotImplemented = errors.New("render: not implemented")

	// ErrNoVertices is returned when a projector is handed an empty batch.
	ErrNoVertices = errors.New("render: cannot project an empty vertex batch")
)

// Projector is a stateless policy mapping a batch of 3D vertices onto the
// 2D screen plane. Implementations are pure functions over the batch: no
// retained state, no side effects.
type Projector interface {
	Project(vertices []math3d.Vec3) ([]math3d.Vec2, error)
}

// Orthographic projects with infinite focal length: Z is dropped and X,Y
// pass through unchanged. No aspect correction, no clipping.
type Orthographic struct{}

// Project implements Projector.
func (Orthographic) Project(vertices []math3d.Vec3) ([]math3d.Vec2, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	out := make([]math3d.Vec2, len(vertices))
	for i, v := range vertices {
		out[i] = math3d.V2(v.X, v.Y)
	}
	return out, nil
}

// Perspective is the reserved perspective-divide projection. It documents
// the extension point (a divide by Z with a configurable focal length) and
// fails rather than silently approximating.
type Perspective struct {
	FocalLength float64
}

// Project implements Projector. It always returns ErrNotImplemented.
func (Perspective) Project(vertices []math3d.Vec3) ([]math3d.Vec2, error) {
	return nil, ErrNotImplemented
}
