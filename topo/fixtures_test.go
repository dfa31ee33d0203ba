package topo

import (
	"testing"

	"github.com/gregorjerse/poroznost/geom"
)

// Closed tetrahedral shell: 4 triangles, 6 edges, every edge shared by
// exactly 2 triangles.
var tetraPoints = [4]geom.Point{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

func tetraSoup() *Soup {
	p := tetraPoints
	s := NewSoup()
	s.Add(p[0], p[1], p[2])
	s.Add(p[0], p[1], p[3])
	s.Add(p[0], p[2], p[3])
	s.Add(p[1], p[2], p[3])
	return s
}

func assertNoFreeEdges(t *testing.T, s *Soup) {
	t.Helper()
	for _, tri := range s.Tris {
		for _, e := range tri.Edges() {
			if len(s.Adj[e]) == 1 {
				t.Errorf("edge %v of triangle %v is free after repair", e, tri)
			}
		}
	}
}
