package topo

import "github.com/gregorjerse/poroznost/geom"

// Soup holds the interned triangle soup: the dense point list, the active
// triangle set and the edge adjacency map shared by the pipeline stages.
// Points are never removed once interned, even when every triangle
// referencing them is pruned later.
type Soup struct {
	Points []geom.Point
	Tris   []Tri // insertion order
	Adj    Adjacency

	index map[geom.Point]uint32
	set   map[Tri]struct{}
}

// NewSoup returns an empty soup.
func NewSoup() *Soup {
	return &Soup{
		index: make(map[geom.Point]uint32),
		set:   make(map[Tri]struct{}),
	}
}

// Intern returns the dense index of p, assigning the next free index on
// first sight. Equality is exact value match.
func (s *Soup) Intern(p geom.Point) uint32 {
	if i, ok := s.index[p]; ok {
		return i
	}
	i := uint32(len(s.Points))
	s.index[p] = i
	s.Points = append(s.Points, p)
	return i
}

// Add interns the three corners and adds the triangle to the active set.
// It reports whether the triangle was new: scan data contains duplicate
// records with permuted vertex order, which collapse to one sorted triple.
func (s *Soup) Add(a, b, c geom.Point) bool {
	i, j, k := s.Intern(a), s.Intern(b), s.Intern(c)
	if i > j {
		i, j = j, i
	}
	if j > k {
		j, k = k, j
	}
	if i > j {
		i, j = j, i
	}
	t := Tri{i, j, k}
	if _, dup := s.set[t]; dup {
		return false
	}
	s.set[t] = struct{}{}
	s.Tris = append(s.Tris, t)
	return true
}

// Has reports whether t is in the active triangle set.
func (s *Soup) Has(t Tri) bool {
	_, ok := s.set[t]
	return ok
}

// Len returns the number of active triangles.
func (s *Soup) Len() int {
	return len(s.Tris)
}

// BuildAdjacency builds the edge adjacency map from the active triangle
// set. Pure pass over the triangles, O(n) with the hashed edge key.
func (s *Soup) BuildAdjacency() {
	adj := make(Adjacency, 3*len(s.Tris)/2)
	for _, t := range s.Tris {
		for _, e := range t.Edges() {
			adj[e] = append(adj[e], t)
		}
	}
	s.Adj = adj
}
