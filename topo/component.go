package topo

// Component is a set of triangles pairwise reachable via shared edges
// restricted to the regular subset, plus any weird triangles attached to
// it afterwards. Tris keeps discovery order, regular members first.
type Component struct {
	Tris    []Tri
	members map[Tri]struct{}
}

func newComponent() *Component {
	return &Component{members: make(map[Tri]struct{})}
}

func (c *Component) add(t Tri) {
	if _, ok := c.members[t]; ok {
		return
	}
	c.members[t] = struct{}{}
	c.Tris = append(c.Tris, t)
}

// Has reports whether t is a member of the component.
func (c *Component) Has(t Tri) bool {
	_, ok := c.members[t]
	return ok
}

// Len returns the number of member triangles.
func (c *Component) Len() int {
	return len(c.Tris)
}

// ExtractComponents flood-fills connected components over the regular
// subgraph: two regular triangles are connected when they share an edge.
// An explicit stack keeps the traversal depth independent of component
// size. The returned components partition the regular set exactly; seeds
// are taken in soup insertion order, so the result is deterministic.
func ExtractComponents(regular []Tri, adj Adjacency) []*Component {
	inRegular := make(map[Tri]struct{}, len(regular))
	for _, t := range regular {
		inRegular[t] = struct{}{}
	}

	visited := make(map[Tri]struct{}, len(regular))
	var comps []*Component
	for _, seed := range regular {
		if _, seen := visited[seed]; seen {
			continue
		}
		c := newComponent()
		visited[seed] = struct{}{}
		stack := []Tri{seed}
		for len(stack) > 0 {
			t := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			c.add(t)
			for _, e := range t.Edges() {
				for _, n := range adj[e] {
					if n == t {
						continue
					}
					if _, ok := inRegular[n]; !ok {
						continue
					}
					if _, seen := visited[n]; seen {
						continue
					}
					visited[n] = struct{}{}
					stack = append(stack, n)
				}
			}
		}
		comps = append(comps, c)
	}
	return comps
}
