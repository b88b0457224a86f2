// Package dfg: weak-connectivity component splitting.
package dfg

import (
	"fmt"
)

// compMark is the scratch-slot payload of the component BFS.
// id 0 means "not yet assigned"; real components count from 1.
type compMark struct {
	id int
}

// SplitIntoComponents partitions the graph into its maximal weakly
// connected components (reachability ignoring edge direction), each
// returned as an independently owned new graph named
// "<name>-<label>-<index>". Components containing no variable are dead
// logic: nothing observable reads or writes them, so their vertices are
// deleted rather than returned. The receiver graph is left empty.
//
// No edge crosses two returned graphs: every edge endpoint pair is, by
// construction, weakly connected and therefore lands in one component.
//
// Acquires the scratch session; calling it while a session is active is
// a contract violation.
// Complexity: O(V+E)
func (g *Graph) SplitIntoComponents(label string) []*Graph {
	scope := g.UserDataInUse()
	defer scope.Release()

	// Phase 1: label every vertex with a component id via BFS over the
	// undirected adjacency (operands and sinks alike).
	type component struct {
		members []Vertex
		hasVar  bool
	}
	var comps []*component
	g.ForEachVertex(func(v Vertex) {
		if UserData[compMark](v).id != 0 {
			return
		}
		comp := &component{}
		id := len(comps) + 1
		UserData[compMark](v).id = id
		queue := []Vertex{v}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp.members = append(comp.members, u)
			if u.Kind().IsVar() {
				comp.hasVar = true
			}
			grow := func(w Vertex) {
				if m := UserData[compMark](w); m.id == 0 {
					m.id = id
					queue = append(queue, w)
				}
			}
			ForEachSource(u, grow)
			u.ForEachSink(grow)
		}
		comps = append(comps, comp)
	})

	// Phase 2: move live components into fresh graphs, drop dead ones.
	out := make([]*Graph, 0, len(comps))
	for _, comp := range comps {
		if !comp.hasVar {
			// Dead logic: unlink everything first so no member is deleted
			// while a fellow member still consumes it.
			for _, v := range comp.members {
				edges := v.SourceEdges()
				for i := range edges {
					edges[i].UnlinkSource()
				}
			}
			for _, v := range comp.members {
				g.RemoveVertex(v)
			}
			continue
		}
		sub := NewGraph(g.module, WithName(fmt.Sprintf("%s-%s-%d", g.name, label, len(out))))
		for _, v := range comp.members {
			g.RemoveVertex(v)
			sub.AddVertex(v)
		}
		out = append(out, sub)
	}
	return out
}
