package topo

import "fmt"

// Orientation propagation state. Every member triangle moves
// unvisited -> queuedState -> orientedState exactly once.
type orientState uint8

const (
	unvisited orientState = iota
	queuedState
	orientedState
)

// traversesForward reports whether the oriented triangle walks edge e from
// e[0] to e[1]. e must be one of the triangle's edges.
func traversesForward(t OrientedTri, e Edge) bool {
	for i := 0; i < 3; i++ {
		a, b := t[i], t[(i+1)%3]
		if a == e[0] && b == e[1] {
			return true
		}
		if a == e[1] && b == e[0] {
			return false
		}
	}
	panic("topo: edge not part of triangle")
}

// localAdjacency builds the edge adjacency restricted to the component's
// own members. The global map still lists pruned-away context such as
// triangles attached to other components across a non-manifold edge.
func localAdjacency(c *Component) Adjacency {
	adj := make(Adjacency, 3*c.Len()/2)
	for _, t := range c.Tris {
		for _, e := range t.Edges() {
			adj[e] = append(adj[e], t)
		}
	}
	return adj
}

// Orient assigns every triangle of the component an ordered vertex triple
// such that edge-adjacent triangles traverse their shared edge in opposite
// directions, the consistency condition for an orientable 2-manifold
// patch.
//
// The seed triangle keeps its as-stored order; from there a worklist flood
// fill crosses every manifold edge (exactly two member triangles on it),
// flipping a newly reached neighbour when it walks the shared edge in the
// same direction as the triangle being expanded. Reaching an already
// resolved triangle again over a different path rechecks the pair; a
// mismatch there means the component is not globally orientable (a
// non-orientable or self-overlapping patch) and fails the whole component.
// Silently emitting an inconsistent winding would corrupt all downstream
// volumetric use of the output, so this is a loud per-component error.
//
// Members reachable only across non-manifold edges (weird triangles
// attached by AttachWeird) are outside the manifold pairwise condition;
// they are resolved best-effort against one already oriented neighbour
// after the main fill.
func Orient(c *Component) ([]OrientedTri, error) {
	if c.Len() == 0 {
		return nil, nil
	}

	local := localAdjacency(c)
	resolved := make(map[Tri]OrientedTri, c.Len())
	states := make(map[Tri]orientState, c.Len())

	seed := c.Tris[0]
	resolved[seed] = OrientedTri(seed)
	states[seed] = queuedState
	stack := []Tri{seed}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		states[t] = orientedState
		ot := resolved[t]

		for i := 0; i < 3; i++ {
			e := MakeEdge(ot[i], ot[(i+1)%3])
			pair := local[e]
			if len(pair) != 2 {
				// Boundary or non-manifold edge: the opposite-direction
				// condition is only defined between exactly two triangles.
				continue
			}
			n := pair[0]
			if n == t {
				n = pair[1]
			}
			tForward := ot[i] == e[0]

			switch states[n] {
			case unvisited:
				on := OrientedTri(n)
				if traversesForward(on, e) == tForward {
					on = on.Flipped()
				}
				resolved[n] = on
				states[n] = queuedState
				stack = append(stack, n)
			default:
				if traversesForward(resolved[n], e) == tForward {
					return nil, fmt.Errorf("orientation contradiction across edge (%d,%d): component is not orientable", e[0], e[1])
				}
			}
		}
	}

	// Second pass for attached weird triangles: no contradiction check,
	// just agree with the first oriented neighbour found on any shared
	// edge. Repeat until settled so chains of weird triangles resolve.
	for progress := true; progress; {
		progress = false
		for _, t := range c.Tris {
			if states[t] != unvisited {
				continue
			}
			ot := OrientedTri(t)
		edges:
			for _, e := range t.Edges() {
				for _, n := range local[e] {
					if n == t || states[n] != orientedState {
						continue
					}
					if traversesForward(ot, e) == traversesForward(resolved[n], e) {
						ot = ot.Flipped()
					}
					resolved[t] = ot
					states[t] = orientedState
					progress = true
					break edges
				}
			}
		}
	}

	out := make([]OrientedTri, 0, c.Len())
	for _, t := range c.Tris {
		if ot, ok := resolved[t]; ok {
			out = append(out, ot)
		} else {
			// Isolated among the members: keep the stored order.
			out = append(out, OrientedTri(t))
		}
	}
	return out, nil
}
