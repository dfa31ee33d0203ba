package topo

import (
	"github.com/gregorjerse/poroznost/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tet is a tetrahedron as four vertex indices.
type Tet [4]uint32

// FillIn caps a component with a single interior point: the centroid of
// the member triangles' vertices is appended as a new point and every
// member triangle is extended to a tetrahedron ending in it. Experimental,
// not run by the main pipeline; only useful on components that enclose a
// convex-ish pore.
func FillIn(s *Soup, tris []Tri) []Tet {
	seen := make(map[uint32]struct{})
	var sum r3.Vec
	for _, t := range tris {
		for _, v := range t {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			sum = r3.Add(sum, s.Points[v].Vec())
		}
	}
	centre := geom.FromVec(r3.Scale(1/float64(len(seen)), sum))

	idx := uint32(len(s.Points))
	s.Points = append(s.Points, centre)

	tets := make([]Tet, 0, len(tris))
	for _, t := range tris {
		tets = append(tets, Tet{t[0], t[1], t[2], idx})
	}
	return tets
}
