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

// The line-based triangle format:
//
//	<n_vertices>,<n_faces>
//	<1-based vertex id>,<x>,<y>,<z>     (n_vertices lines, ids in any order)
//	<1-based v1>,<1-based v2>,<1-based v3>   (n_faces lines)
//
// IDs are 1-based on disk and 0-based in memory.

// LoadTri reads a mesh in the line-based triangle format.
func LoadTri(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	nVerts, nFaces, err := readTriHeader(sc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	vertices := make([]math3d.Vec3, nVerts)
	for i := 0; i < nVerts; i++ {
		fields, err := readCSVLine(sc, 4)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %d: %w", path, i+1, err)
		}
		id := int(fields[0])
		if id < 1 || id > nVerts {
			return nil, fmt.Errorf("%s: vertex id %d out of range [1, %d]", path, id, nVerts)
		}
		vertices[id-1] = math3d.V3(fields[1], fields[2], fields[3])
	}

	faces := make([][3]int, nFaces)
	for i := 0; i < nFaces; i++ {
		fields, err := readCSVLine(sc, 3)
		if err != nil {
			return nil, fmt.Errorf("%s: face %d: %w", path, i+1, err)
		}
		faces[i] = [3]int{int(fields[0]) - 1, int(fields[1]) - 1, int(fields[2]) - 1}
	}

	return mesh.New(filepath.Base(path), vertices, faces), nil
}

// SaveTri writes a mesh in the line-based triangle format.
func SaveTri(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d,%d\n", m.VertexCount(), m.FaceCount())
	for i, v := range m.Vertices {
		fmt.Fprintf(w, "%d,%s,%s,%s\n", i+1, formatCoord(v.X), formatCoord(v.Y), formatCoord(v.Z))
	}
	for _, face := range m.Faces {
		fmt.Fprintf(w, "%d,%d,%d\n", face[0]+1, face[1]+1, face[2]+1)
	}
	return w.Flush()
}

func readTriHeader(sc *bufio.Scanner) (nVerts, nFaces int, err error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("missing header line")
	}
	parts := strings.Split(strings.TrimSpace(sc.Text()), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("header must be \"<n_vertices>,<n_faces>\", got %q", sc.Text())
	}
	nVerts, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad vertex count: %w", err)
	}
	nFaces, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad face count: %w", err)
	}
	if nVerts < 0 || nFaces < 0 {
		return 0, 0, fmt.Errorf("negative counts in header %q", sc.Text())
	}
	return nVerts, nFaces, nil
}

func readCSVLine(sc *bufio.Scanner, want int) ([]float64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected end of file")
	}
	parts := strings.Split(strings.TrimSpace(sc.Text()), ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", want, len(parts))
	}
	fields := make([]float64, want)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		fields[i] = v
	}
	return fields, nil
}

// formatCoord renders a coordinate compactly without losing precision.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
