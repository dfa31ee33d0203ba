package meshio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gregorjerse/poroznost/geom"
	"github.com/gregorjerse/poroznost/topo"
)

// ComponentPath returns where component i of a run is written:
// <dir>/<base>_<NN>.out with a zero-padded two-digit component index.
func ComponentPath(dir, base string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%02d.out", base, i))
}

// WriteComponents writes one file per oriented component. Each line is one
// triangle as nine space-separated floats, the three corners listed in the
// resolved winding order. Returns the paths written.
func WriteComponents(dir, base string, points []geom.Point, comps []topo.ComponentResult) ([]string, error) {
	var paths []string
	for _, c := range comps {
		path := ComponentPath(dir, base, c.Index)
		if err := writeComponent(path, points, c.Tris); err != nil {
			return paths, fmt.Errorf("writing component %02d: %w", c.Index, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeComponent(path string, points []geom.Point, tris []topo.OrientedTri) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, t := range tris {
		for j, v := range t {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			p := points[v]
			fmt.Fprintf(w, "%g %g %g", p.X, p.Y, p.Z)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// WriteTetrahedra writes a fill-in result, one tetrahedron per line as
// twelve space-separated floats.
func WriteTetrahedra(path string, points []geom.Point, tets []topo.Tet) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, t := range tets {
		for j, v := range t {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			p := points[v]
			fmt.Fprintf(w, "%g %g %g", p.X, p.Y, p.Z)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// WriteOBJ dumps the active triangle set as a Wavefront OBJ file, useful
// for inspecting the repaired mesh in a viewer. Triangles are written in
// canonical (unoriented) vertex order.
func WriteOBJ(path string, points []geom.Point, tris []topo.Tri) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for _, t := range tris {
		// OBJ indices are one-based.
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1); err != nil {
			return err
		}
	}
	return w.Flush()
}
