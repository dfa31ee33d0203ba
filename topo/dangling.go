package topo

// A free edge is an edge whose adjacency list contains exactly one
// triangle. A triangle with a free edge sticks out of the surface and is
// not part of any closed 2-manifold patch.

func hasFreeEdge(t Tri, adj Adjacency) bool {
	for _, e := range t.Edges() {
		if len(adj[e]) == 1 {
			return true
		}
	}
	return false
}

// unlink removes t from the adjacency lists of its three edges, dropping
// entries that become empty.
func unlink(adj Adjacency, t Tri) {
	for _, e := range t.Edges() {
		list := adj[e]
		for i := range list {
			if list[i] == t {
				adj[e] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(adj[e]) == 0 {
			delete(adj, e)
		}
	}
}

// RemoveDangling strips every triangle that has a free edge and propagates
// the consequences: removing a triangle can expose new free edges on its
// former neighbours, so this is a fixpoint erosion driven by a worklist,
// not a single filtering pass. The adjacency map is fixed up as triangles
// go. Returns the number of triangles removed.
//
// On exit no surviving edge has adjacency size exactly 1. Note that a
// genuine open boundary (an intentional hole in the scanned surface)
// presents exactly like a spurious fin and erodes just as aggressively;
// the input is assumed to be a closed porous surface.
func RemoveDangling(s *Soup) int {
	removed := make(map[Tri]struct{})
	queued := make(map[Tri]struct{})
	var queue []Tri
	for _, t := range s.Tris {
		if hasFreeEdge(t, s.Adj) {
			queue = append(queue, t)
			queued[t] = struct{}{}
		}
	}

	for len(queue) > 0 {
		t := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		delete(queued, t)
		if _, gone := removed[t]; gone {
			continue
		}

		// Collect the former neighbours before unlinking.
		var neighbours []Tri
		for _, e := range t.Edges() {
			for _, n := range s.Adj[e] {
				if n != t {
					neighbours = append(neighbours, n)
				}
			}
		}

		unlink(s.Adj, t)
		removed[t] = struct{}{}

		for _, n := range neighbours {
			if _, gone := removed[n]; gone {
				continue
			}
			if _, q := queued[n]; q {
				continue
			}
			if hasFreeEdge(n, s.Adj) {
				queue = append(queue, n)
				queued[n] = struct{}{}
			}
		}
	}

	if len(removed) == 0 {
		return 0
	}
	kept := s.Tris[:0]
	for _, t := range s.Tris {
		if _, gone := removed[t]; gone {
			delete(s.set, t)
			continue
		}
		kept = append(kept, t)
	}
	s.Tris = kept
	return len(removed)
}
