package topo

import (
	"testing"

	"github.com/gregorjerse/poroznost/geom"
)

func twoShellSoup() *Soup {
	s := tetraSoup()
	var far [4]geom.Point
	for i, p := range tetraPoints {
		far[i] = geom.Point{X: p.X + 10, Y: p.Y, Z: p.Z}
	}
	s.Add(far[0], far[1], far[2])
	s.Add(far[0], far[1], far[3])
	s.Add(far[0], far[2], far[3])
	s.Add(far[1], far[2], far[3])
	return s
}

func TestExtractComponentsTwoShells(t *testing.T) {
	s := twoShellSoup()
	s.BuildAdjacency()
	regular, weird := Classify(s)
	if len(weird) != 0 {
		t.Fatalf("unexpected weird triangles: %d", len(weird))
	}

	comps := ExtractComponents(regular, s.Adj)
	if len(comps) != 2 {
		t.Fatalf("got %d components, want 2", len(comps))
	}
	for i, c := range comps {
		if c.Len() != 4 {
			t.Errorf("component %d has %d triangles, want 4", i, c.Len())
		}
	}

	// Components partition the regular set exactly.
	counts := make(map[Tri]int)
	for _, c := range comps {
		for _, tri := range c.Tris {
			counts[tri]++
		}
	}
	for _, tri := range regular {
		if counts[tri] != 1 {
			t.Errorf("triangle %v appears in %d components, want 1", tri, counts[tri])
		}
	}
}

func TestExtractComponentsSkipsWeirdNeighbours(t *testing.T) {
	p := tetraPoints
	s := tetraSoup()
	s.Add(p[1], p[2], geom.Point{X: 2, Y: 2, Z: 2})
	s.BuildAdjacency()
	regular, _ := Classify(s)

	// The two remaining regular faces share edge (p0,p3) and form one
	// component; reachability through the weird faces does not count.
	comps := ExtractComponents(regular, s.Adj)
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	if comps[0].Len() != 2 {
		t.Errorf("component has %d triangles, want 2", comps[0].Len())
	}
}
