// Package meshio loads and saves mesh files. Supported formats are the
// line-based triangle format (.tri, .txt), Wavefront-style OBJ (.obj) and
// GLB/GLTF (.glb, .gltf, load only).
package meshio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/facet3d/facet/pkg/mesh"
)

// ErrUnsupportedFormat reports a file extension no loader or saver
// recognizes.
var ErrUnsupportedFormat = errors.New("meshio: unsupported file format")

// Load reads a mesh, picking the format from the file extension. Loaded
// meshes are validated: a face referencing a missing vertex is an error,
// not a deferred crash.
func Load(path string) (*mesh.Mesh, error) {
	var (
		m   *mesh.Mesh
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tri", ".txt":
		m, err = LoadTri(path)
	case ".obj":
		m, err = LoadOBJ(path)
	case ".glb", ".gltf":
		m, err = LoadGLTF(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes a mesh, picking the format from the file extension.
func Save(path string, m *mesh.Mesh) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tri", ".txt":
		return SaveTri(path, m)
	case ".obj":
		return SaveOBJ(path, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
