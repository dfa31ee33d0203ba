package topo

// Classify partitions the surviving triangles into regular ones, whose
// edges all have at most two incident triangles, and weird ones, which
// have at least one non-manifold edge (three or more triangles meeting at
// it). The two slices are disjoint and together cover the active set, in
// soup insertion order.
func Classify(s *Soup) (regular, weird []Tri) {
	for _, t := range s.Tris {
		w := false
		for _, e := range t.Edges() {
			if len(s.Adj[e]) > 2 {
				w = true
				break
			}
		}
		if w {
			weird = append(weird, t)
		} else {
			regular = append(regular, t)
		}
	}
	return regular, weird
}
