// Package dfg: topological ordering with cycle detection.
package dfg

// Visitation marks for the ordering DFS, stored in scratch slots.
const (
	topoWhite = iota // not yet visited
	topoGray         // on the recursion path
	topoBlack        // fully explored
)

// topoMark is the scratch-slot payload of the ordering DFS.
type topoMark struct {
	state uint8
}

// SortTopologically reorders the graph's internal iteration order so that
// producers are visited before their consumers (or strictly after, when
// reverse is true). Returns false and leaves the iteration order
// untouched when the graph contains a cycle; returns true and commits the
// new order otherwise.
//
// Iteration stays partition-major: variables, then constants, then
// operations, each partition rebuilt in the committed global order.
// Variables and constants are boundary elements (storage and literals),
// so the producer-before-consumer guarantee covers every edge whose sink
// is an operation; edges into variables are storage commits and exempt,
// since variables deliberately iterate first.
//
// Acquires the scratch session for the DFS marks; calling it while a
// session is active is a contract violation.
// Complexity: O(V+E)
func (g *Graph) SortTopologically(reverse bool) bool {
	scope := g.UserDataInUse()
	defer scope.Release()

	order := make([]Vertex, 0, g.VertexCount())

	// Post-order DFS over operand (producer) edges: a vertex is appended
	// only after everything upstream of it, so 'order' lists producers
	// first. A gray vertex rediscovered on its own path is a cycle.
	var visit func(v Vertex) bool
	visit = func(v Vertex) bool {
		m := UserData[topoMark](v)
		switch m.state {
		case topoBlack:
			return true
		case topoGray:
			return false // back-edge: cycle
		}
		m.state = topoGray
		edges := v.SourceEdges()
		for i := range edges {
			if src := edges[i].source; src != nil {
				if !visit(src) {
					return false
				}
			}
		}
		m.state = topoBlack
		order = append(order, v)
		return true
	}

	acyclic := true
	g.ForEachVertex(func(v Vertex) {
		if acyclic && !visit(v) {
			acyclic = false
		}
	})
	if !acyclic {
		return false
	}

	// Commit: relink all three partition lists following the global order.
	g.vars = vertexList{}
	g.consts = vertexList{}
	g.ops = vertexList{}
	if reverse {
		for i := len(order) - 1; i >= 0; i-- {
			g.listFor(order[i]).pushBack(order[i])
		}
	} else {
		for _, v := range order {
			g.listFor(v).pushBack(v)
		}
	}
	return true
}
