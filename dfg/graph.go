// Package dfg: the Graph type and its membership model.
//
// A Graph owns every vertex inserted into it. The vertex set is
// partitioned into three intrusively-linked sub-lists, variables,
// constants, and operations, so bulk passes can skip whole categories:
// variables and constants are 40-50% of all vertices in practice and
// usually need different handling from operations.
package dfg

// vertexList is one intrusive kind-partition list. Links live in the
// vertexBase, so membership costs no allocation.
type vertexList struct {
	head  Vertex
	tail  Vertex
	count int
}

// pushBack appends v, which must be unlinked.
func (l *vertexList) pushBack(v Vertex) {
	b := v.base()
	b.prev = l.tail
	b.next = nil
	if l.tail != nil {
		l.tail.base().next = v
	} else {
		l.head = v
	}
	l.tail = v
	l.count++
}

// remove unlinks v from the list.
func (l *vertexList) remove(v Vertex) {
	b := v.base()
	if b.prev != nil {
		b.prev.base().next = b.next
	} else {
		l.head = b.next
	}
	if b.next != nil {
		b.next.base().prev = b.prev
	} else {
		l.tail = b.prev
	}
	b.prev = nil
	b.next = nil
	l.count--
}

// forEach calls f on every vertex. The next pointer is captured before f
// runs, so removing or deleting the visited vertex is safe; removing any
// other vertex of the same graph mid-iteration is not.
func (l *vertexList) forEach(f func(Vertex)) {
	for v := l.head; v != nil; {
		next := v.base().next
		f(v)
		v = next
	}
}

// forEachReverse is forEach from the tail, with the same tolerance.
func (l *vertexList) forEachReverse(f func(Vertex)) {
	for v := l.tail; v != nil; {
		prev := v.base().prev
		f(v)
		v = prev
	}
}

// Graph owns the data-flow vertices of one module's combinational logic.
// Not safe for concurrent use: every operation assumes exclusive access
// for the duration of the call. Distinct graphs are independent and may
// live on separate goroutines.
type Graph struct {
	name   string
	module *Module

	vars   vertexList // variable references
	consts vertexList // constants
	ops    vertexList // operations

	userCurrent uint32 // scratch generation currently in use, 0 when free
	userCnt     uint32 // scratch generation counter
}

// NewGraph creates an empty graph representing logic of the given module.
// Complexity: O(1)
func NewGraph(module *Module, opts ...GraphOption) *Graph {
	g := &Graph{module: module}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the graph's diagnostic name.
func (g *Graph) Name() string { return g.name }

// Module returns the logic-block this graph represents.
func (g *Graph) Module() *Module { return g.module }

// VertexCount returns the total number of owned vertices. O(1).
func (g *Graph) VertexCount() int {
	return g.vars.count + g.consts.count + g.ops.count
}

// VarCount returns the number of variable vertices. O(1).
func (g *Graph) VarCount() int { return g.vars.count }

// ConstCount returns the number of constant vertices. O(1).
func (g *Graph) ConstCount() int { return g.consts.count }

// OpCount returns the number of operation vertices. O(1).
func (g *Graph) OpCount() int { return g.ops.count }

// listFor routes a vertex into its kind partition.
func (g *Graph) listFor(v Vertex) *vertexList {
	switch {
	case v.Kind().IsVar():
		return &g.vars
	case v.Kind().IsConst():
		return &g.consts
	default:
		return &g.ops
	}
}

// AddVertex inserts v into this graph's vertex set. A vertex belongs to
// at most one graph at a time, so inserting an owned vertex is a contract
// violation. Insertion marks the vertex's scratch slot stale.
// Complexity: O(1)
func (g *Graph) AddVertex(v Vertex) {
	b := v.base()
	if b.graph != nil {
		contractf(b.loc, "vertex %s already belongs to a graph", v)
	}
	b.graph = g
	b.userGen = 0 // stale under any generation of this graph
	g.listFor(v).pushBack(v)
}

// RemoveVertex detaches v from this graph's vertex set without touching
// its edges. Removing a vertex this graph does not own is a contract
// violation.
// Complexity: O(1)
func (g *Graph) RemoveVertex(v Vertex) {
	b := v.base()
	if b.graph != g {
		contractf(b.loc, "vertex %s removed from a graph that does not own it", v)
	}
	g.listFor(v).remove(v)
	b.graph = nil
}

// ForEachVertex calls f on every vertex: variables first, then constants,
// then operations. Removing or deleting the vertex passed to f is safe;
// removing any other vertex of this graph during the iteration is not.
func (g *Graph) ForEachVertex(f func(Vertex)) {
	g.vars.forEach(f)
	g.consts.forEach(f)
	g.ops.forEach(f)
}

// ForEachVertexInReverse is ForEachVertex in the exact reverse order:
// operations backwards, then constants, then variables.
func (g *Graph) ForEachVertexInReverse(f func(Vertex)) {
	g.ops.forEachReverse(f)
	g.consts.forEachReverse(f)
	g.vars.forEachReverse(f)
}

// ForEachVar calls f on every variable vertex, skipping the other
// partitions entirely. Same mutation tolerance as ForEachVertex.
func (g *Graph) ForEachVar(f func(*VarVertex)) {
	g.vars.forEach(func(v Vertex) { f(v.(*VarVertex)) })
}

// ForEachConst calls f on every constant vertex.
func (g *Graph) ForEachConst(f func(*ConstVertex)) {
	g.consts.forEach(func(v Vertex) { f(v.(*ConstVertex)) })
}

// ForEachOp calls f on every operation vertex.
func (g *Graph) ForEachOp(f func(Vertex)) {
	g.ops.forEach(f)
}

// FindVertex returns the first vertex satisfying p in iteration order,
// or nil when no vertex matches.
func (g *Graph) FindVertex(p func(Vertex) bool) Vertex {
	var found Vertex
	g.ForEachVertex(func(v Vertex) {
		if found == nil && p(v) {
			found = v
		}
	})
	return found
}

// AddGraph moves the entire vertex set of other into this graph, leaving
// other empty. Edges are untouched: they connect the same vertices as
// before, which now all live here. Used to recombine split sub-graphs.
// Complexity: O(|other|)
func (g *Graph) AddGraph(other *Graph) {
	other.ForEachVertex(func(v Vertex) {
		other.RemoveVertex(v)
		g.AddVertex(v)
	})
}

// RunToFixedPoint applies f to every vertex, over and over, until one
// full pass reports no change. f returns true when it changed the graph.
// Termination is a contract on f: each reported change must be
// individually terminating and monotonically shrinking in effect.
func (g *Graph) RunToFixedPoint(f func(Vertex) bool) {
	for {
		changed := false
		g.ForEachVertex(func(v Vertex) {
			if f(v) {
				changed = true
			}
		})
		if !changed {
			return
		}
	}
}
