package meshio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/facet3d/facet/pkg/math3d"
	"github.com/facet3d/facet/pkg/mesh"
)

// LoadOBJ reads a mesh in the Wavefront-style format: "v x y z" lines
// define vertices in file order, "f i j k" lines define triangles with
// 1-based vertex references. Other line types are ignored.
func LoadOBJ(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		vertices []math3d.Vec3
		faces    [][3]int
	)

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: vertex needs 3 coordinates", path, lineNo)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				coords[i], err = strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: bad coordinate %q: %w", path, lineNo, fields[i+1], err)
				}
			}
			vertices = append(vertices, math3d.V3(coords[0], coords[1], coords[2]))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: face needs 3 vertex references", path, lineNo)
			}
			var idx [3]int
			for i := 0; i < 3; i++ {
				// Tolerate "i/uv/normal" references by taking the index part.
				ref, _, _ := strings.Cut(fields[i+1], "/")
				n, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: bad vertex reference %q: %w", path, lineNo, fields[i+1], err)
				}
				idx[i] = n - 1
			}
			faces = append(faces, idx)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return mesh.New(filepath.Base(path), vertices, faces), nil
}

// SaveOBJ writes a mesh in the Wavefront-style format.
func SaveOBJ(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "v %s %s %s\n", formatCoord(v.X), formatCoord(v.Y), formatCoord(v.Z))
	}
	for _, face := range m.Faces {
		fmt.Fprintf(w, "f %d %d %d\n", face[0]+1, face[1]+1, face[2]+1)
	}
	return w.Flush()
}
