package topo

// AttachWeird assigns weird triangles to the components they border.
// A weird triangle joins a component when at least two of its three edges
// have a neighbouring triangle inside that component. This is a
// majority-neighbour heuristic rather than strict reachability: weird
// triangles violate the manifold assumption that flood fill relies on.
// A triangle bridging two components joins both, intentionally. Triangles
// bordering fewer than two edges of every component are returned
// unassigned.
func AttachWeird(comps []*Component, weird []Tri, adj Adjacency) []Tri {
	var unassigned []Tri
	for _, w := range weird {
		placed := false
		for _, c := range comps {
			borders := 0
			for _, e := range w.Edges() {
				for _, n := range adj[e] {
					if n != w && c.Has(n) {
						borders++
						break
					}
				}
			}
			if borders >= 2 {
				c.add(w)
				placed = true
			}
		}
		if !placed {
			unassigned = append(unassigned, w)
		}
	}
	return unassigned
}
