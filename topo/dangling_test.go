package topo

import (
	"testing"

	"github.com/gregorjerse/poroznost/geom"
)

func TestRemoveDanglingKeepsClosedShell(t *testing.T) {
	s := tetraSoup()
	s.BuildAdjacency()

	if removed := RemoveDangling(s); removed != 0 {
		t.Errorf("removed %d triangles from a closed shell", removed)
	}
	if s.Len() != 4 {
		t.Errorf("expected 4 surviving triangles, got %d", s.Len())
	}
	assertNoFreeEdges(t, s)
}

func TestRemoveDanglingPendantTriangle(t *testing.T) {
	p := tetraPoints
	s := tetraSoup()
	// A pendant triangle hanging off edge (p1,p2): two of its three edges
	// are free.
	s.Add(p[1], p[2], geom.Point{X: 2, Y: 2, Z: 2})
	s.BuildAdjacency()

	if removed := RemoveDangling(s); removed != 1 {
		t.Errorf("removed %d triangles, want 1", removed)
	}
	if s.Len() != 4 {
		t.Errorf("expected the closed shell to survive, got %d triangles", s.Len())
	}
	// Back to the closed-tetrahedron picture: every surviving edge is
	// shared by exactly 2 triangles.
	for _, tri := range s.Tris {
		for _, e := range tri.Edges() {
			if len(s.Adj[e]) != 2 {
				t.Errorf("edge %v has %d incident triangles, want 2", e, len(s.Adj[e]))
			}
		}
	}
}

func TestRemoveDanglingErodesTransitively(t *testing.T) {
	p := tetraPoints
	p4 := geom.Point{X: 2, Y: 0, Z: 0}
	p5 := geom.Point{X: 3, Y: 0, Z: 0}
	p6 := geom.Point{X: 2, Y: 1, Z: 0}

	s := tetraSoup()
	// flap1 shares edge (p1,p2) with the shell and has no free edge at
	// first: both its other edges are covered by flap2 and flap3. Only
	// after those erode does flap1 become dangling, so a single filtering
	// pass would miss it.
	s.Add(p[1], p[2], p4) // flap1
	s.Add(p[1], p4, p5)   // flap2, two free edges
	s.Add(p[2], p4, p6)   // flap3, two free edges
	s.BuildAdjacency()

	if removed := RemoveDangling(s); removed != 3 {
		t.Errorf("removed %d triangles, want 3", removed)
	}
	if s.Len() != 4 {
		t.Errorf("expected only the closed shell to survive, got %d triangles", s.Len())
	}
	assertNoFreeEdges(t, s)
}
