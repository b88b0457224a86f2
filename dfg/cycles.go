// Package dfg: cyclic-component extraction.
//
// Combinational cycles cannot be ordered, so they are quarantined: every
// non-trivial strongly connected component is grown outward through
// operation vertices, bounded by variables (storage elements, the natural
// cut points of the logic), and each grown region is moved into its own
// graph. The residual graph is acyclic afterward.
package dfg

import "fmt"

// sccState is the scratch-slot payload of the SCC pass: Tarjan bookkeeping
// plus the assigned region id (0 while unassigned; real regions from 1).
type sccState struct {
	index   int // discovery index, 0 while unvisited
	lowlink int
	onStack bool
	region  int
}

// ExtractCyclicComponents identifies every non-trivial strongly connected
// component (a cyclic core), grows each one outward across operation
// vertices to include everything that feeds or is fed from the core, up
// to the nearest variable boundary, and returns each grown region as its
// own graph named "<name>-<label>-<index>". Regions that meet through
// operation logic are merged; regions meeting only at a variable stay
// separate, and the boundary variable is split by cloning it per region
// (all clones reference the same module Variable), so no edge ever
// crosses two graphs.
//
// The returned graphs each contain at least one cycle, are weakly
// connected, but are not necessarily strongly connected. Acyclic trivial
// SCCs stay in the receiver, which is guaranteed acyclic afterward,
// though possibly disconnected.
//
// Acquires the scratch session; calling it while a session is active is
// a contract violation.
// Complexity: O(V+E)
func (g *Graph) ExtractCyclicComponents(label string) []*Graph {
	scope := g.UserDataInUse()
	defer scope.Release()

	// Phase 1: Tarjan's algorithm over the directed operand edges.
	// Regions are assigned only to members of non-trivial SCCs: two or
	// more vertices, or a single vertex driving itself.
	var (
		stack   []Vertex
		nextIdx = 1
		regions = newRegionSet()
	)
	var strongConnect func(v Vertex)
	strongConnect = func(v Vertex) {
		s := UserData[sccState](v)
		s.index = nextIdx
		s.lowlink = nextIdx
		nextIdx++
		stack = append(stack, v)
		s.onStack = true

		ForEachSource(v, func(src Vertex) {
			ss := UserData[sccState](src)
			if ss.index == 0 {
				strongConnect(src)
				s.lowlink = min(s.lowlink, ss.lowlink)
			} else if ss.onStack {
				s.lowlink = min(s.lowlink, ss.index)
			}
		})

		if s.lowlink != s.index {
			return
		}
		// v roots an SCC: pop it off the stack.
		var members []Vertex
		for {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			UserData[sccState](top).onStack = false
			members = append(members, top)
			if top == v {
				break
			}
		}
		if len(members) == 1 && !drivesItself(members[0]) {
			return // trivial acyclic SCC, stays behind
		}
		id := regions.add()
		for _, m := range members {
			UserData[sccState](m).region = id
		}
	}
	g.ForEachVertex(func(v Vertex) {
		if UserData[sccState](v).index == 0 {
			strongConnect(v)
		}
	})

	// Phase 2: grow regions outward through operation vertices, in both
	// edge directions. Variables are boundaries: they take a region label
	// but never propagate one, and two regions meeting at a variable are
	// not merged; regions meeting through operation logic are.
	var worklist []Vertex
	g.ForEachVertex(func(v Vertex) {
		if UserData[sccState](v).region != 0 && !v.Kind().IsVar() {
			worklist = append(worklist, v)
		}
	})
	for len(worklist) > 0 {
		v := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		c := regions.find(UserData[sccState](v).region)
		grow := func(u Vertex) {
			su := UserData[sccState](u)
			switch {
			case su.region == 0:
				su.region = c
				if !u.Kind().IsVar() {
					worklist = append(worklist, u)
				}
			case !u.Kind().IsVar():
				regions.union(c, su.region)
			}
		}
		ForEachSource(v, grow)
		v.ForEachSink(grow)
	}

	// Snapshot the final region of every labelled vertex in iteration
	// order: moving vertices between graphs invalidates their scratch
	// slots, and a stable order keeps sub-graph numbering deterministic.
	var labelled []Vertex
	finalRegion := make(map[Vertex]int)
	g.ForEachVertex(func(v Vertex) {
		if r := UserData[sccState](v).region; r != 0 {
			labelled = append(labelled, v)
			finalRegion[v] = regions.find(r)
		}
	})
	scope.Release()

	// Phase 3: move each region into its own graph.
	byRoot := make(map[int]*Graph)
	var out []*Graph
	for _, v := range labelled {
		r := finalRegion[v]
		sub := byRoot[r]
		if sub == nil {
			sub = NewGraph(g.module, WithName(fmt.Sprintf("%s-%s-%d", g.name, label, len(out))))
			byRoot[r] = sub
			out = append(out, sub)
		}
		g.RemoveVertex(v)
		sub.AddVertex(v)
	}

	// Phase 4: split boundary variables. Any edge still connecting two
	// graphs has a variable endpoint; reroute each cross edge to a clone
	// of that variable living in the other endpoint's graph.
	clones := make(map[varClone]*VarVertex)
	graphs := append([]*Graph{g}, out...)
	for _, owner := range graphs {
		owner.ForEachVar(func(v *VarVertex) {
			splitCrossEdges(v, owner, clones)
		})
	}
	return out
}

// varClone keys boundary-variable clones by original vertex and target.
type varClone struct {
	v      *VarVertex
	target *Graph
}

// splitCrossEdges reroutes every edge of v that reaches outside owner to
// a per-target-graph clone of v. Clones share v's Variable, so structural
// equality still identifies them as the same storage.
func splitCrossEdges(v *VarVertex, owner *Graph, clones map[varClone]*VarVertex) {
	cloneFor := func(target *Graph) *VarVertex {
		key := varClone{v: v, target: target}
		c := clones[key]
		if c == nil {
			c = NewVar(target, v.Variable())
			clones[key] = c
		}
		return c
	}
	// Drivers sourced from another graph move onto the clone over there,
	// leaving a vacant slot here.
	edges := v.SourceEdges()
	for i := range edges {
		src := edges[i].source
		if src == nil || src.Graph() == owner {
			continue
		}
		cloneFor(src.Graph()).AddDriver(src)
		edges[i].UnlinkSource()
	}
	// Readers living in another graph re-read the clone over there.
	v.ForEachSinkEdge(func(e *Edge) {
		if e.Sink().Graph() != owner {
			e.RelinkSource(cloneFor(e.Sink().Graph()))
		}
	})
}

// drivesItself reports a direct self-loop.
func drivesItself(v Vertex) bool {
	return FindSourceEdge(v, func(e *Edge, _ int) bool { return e.source == v }) != nil
}

// regionSet is a small union-find over region ids.
type regionSet struct {
	parent []int // parent[i] == i for roots; index 0 unused
}

func newRegionSet() *regionSet {
	return &regionSet{parent: []int{0}}
}

// add allocates a fresh region and returns its id.
func (r *regionSet) add() int {
	id := len(r.parent)
	r.parent = append(r.parent, id)
	return id
}

// find returns the root of id, with path compression.
func (r *regionSet) find(id int) int {
	for r.parent[id] != id {
		r.parent[id] = r.parent[r.parent[id]]
		id = r.parent[id]
	}
	return id
}

// union merges the regions of a and b.
func (r *regionSet) union(a, b int) {
	ra, rb := r.find(a), r.find(b)
	if ra != rb {
		r.parent[rb] = ra
	}
}
