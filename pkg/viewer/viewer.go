// Package viewer owns the presentation state of a facet session: the mesh
// currently on display and the renderer drawing it.
package viewer

import (
	"go.uber.org/zap"

	"github.com/facet3d/facet/pkg/mesh"
	"github.com/facet3d/facet/pkg/render"
)

// Viewer holds the current display mesh (nil until a mesh is put) and a
// renderer. All mutation goes through explicit method calls; callers must
// serialize access, typically by confining the viewer to one UI goroutine.
type Viewer struct {
	renderer render.Renderer
	surface  render.Surface
	current  *mesh.Mesh
	log      *zap.Logger
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithLogger attaches a logger. The default is a no-op logger so library
// use stays silent.
func WithLogger(log *zap.Logger) Option {
	return func(v *Viewer) {
		v.log = log
	}
}

// New creates a viewer rendering onto the given surface.
func New(r render.Renderer, s render.Surface, opts ...Option) *Viewer {
	v := &Viewer{
		renderer: r,
		surface:  s,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// PutMesh takes a display copy of m, normalizes it into [-1, 1] and flips
// its Y axis to match canvas coordinates, then redraws. The caller's mesh
// is never mutated; later rotations apply to the display copy only.
func (v *Viewer) PutMesh(m *mesh.Mesh) error {
	display := m.Clone()
	display.Normalize()
	display.FlipY()
	v.current = display
	v.log.Info("mesh loaded",
		zap.String("name", display.Name),
		zap.Int("vertices", display.VertexCount()),
		zap.Int("faces", display.FaceCount()))
	return v.Redraw()
}

// Mesh returns the current display mesh, or nil when nothing is loaded.
func (v *Viewer) Mesh() *mesh.Mesh {
	return v.current
}

// SetRenderer swaps the rendering strategy and redraws.
func (v *Viewer) SetRenderer(r render.Renderer) error {
	v.renderer = r
	return v.Redraw()
}

// Surface returns the surface the viewer draws onto.
func (v *Viewer) Surface() render.Surface {
	return v.surface
}

// SetSurface points the viewer at a new surface (e.g. after a resize) and
// redraws.
func (v *Viewer) SetSurface(s render.Surface) error {
	v.surface = s
	return v.Redraw()
}

// Rotate applies a yaw/pitch/roll delta to the display mesh and redraws.
// Rotating with no mesh loaded is a no-op.
func (v *Viewer) Rotate(yaw, pitch, roll float64) error {
	if v.current == nil {
		return nil
	}
	v.current.Rotate(yaw, pitch, roll)
	return v.Redraw()
}

// Redraw re-renders the current mesh. With no mesh loaded the surface is
// cleared so stale geometry never remains.
func (v *Viewer) Redraw() error {
	if v.current == nil {
		v.surface.Clear()
		return nil
	}
	if err := v.renderer.Render(v.current, v.surface); err != nil {
		v.log.Error("render failed", zap.Error(err))
		return err
	}
	return nil
}
