// Package topo repairs and decomposes a connectivity-free triangle soup
// into consistently oriented, topologically clean surface components.
package topo

// Tri is a triangle as a canonical, ascending triple of vertex indices.
// The sorted form is the identity of a triangle: two input records with the
// same vertex set collapse to the same Tri regardless of listing order.
type Tri [3]uint32

// OrientedTri is a triangle whose vertex order is meaningful: the winding
// encodes the normal direction via the right-hand rule. Produced by Orient.
type OrientedTri [3]uint32

// Edge is an undirected edge stored as (low, high), so (a,b) and (b,a)
// don't get confused.
type Edge [2]uint32

// Adjacency maps every edge to the triangles currently incident to it.
// While valid, every active triangle appears exactly once in each of its
// three edges' lists.
type Adjacency map[Edge][]Tri

// MakeEdge returns the canonical edge between vertices a and b.
func MakeEdge(a, b uint32) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Edges returns the three edges of the triangle.
func (t Tri) Edges() [3]Edge {
	return [3]Edge{
		MakeEdge(t[0], t[1]),
		MakeEdge(t[1], t[2]),
		MakeEdge(t[0], t[2]),
	}
}

// Canonical returns the unordered identity of an oriented triangle.
func (t OrientedTri) Canonical() Tri {
	a, b, c := t[0], t[1], t[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Tri{a, b, c}
}

// Flipped returns the triangle with reversed winding (two vertices swapped).
func (t OrientedTri) Flipped() OrientedTri {
	return OrientedTri{t[0], t[2], t[1]}
}
