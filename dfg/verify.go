package dfg

import (
	"fmt"

	"go.uber.org/multierr"
)

// Verify checks the structural invariants of the graph and returns every
// violation found, combined into one error, or nil when the graph is
// consistent. It is meant for tests and debug builds; the operational
// code never needs it to hold its own invariants.
//
// Checked per vertex:
//   - the vertex points back at this graph and sits in the partition
//     list matching its kind;
//   - every linked operand edge names the vertex as its sink and is
//     reachable from its source's sink list;
//   - every entry of the sink list names the vertex as its source, and
//     the list's prev/next pointers are mutually consistent.
//
// Complexity: O(V+E) expected, with per-source sink-list scans.
func (g *Graph) Verify() error {
	var err error

	check := func(list *vertexList, wantVar, wantConst bool) {
		n := 0
		list.forEach(func(v Vertex) {
			n++
			err = multierr.Append(err, verifyMembership(g, v, wantVar, wantConst))
			err = multierr.Append(err, verifyOperandEdges(v))
			err = multierr.Append(err, verifySinkList(v))
		})
		if n != list.count {
			err = multierr.Append(err, fmt.Errorf("%w: list holds %d vertices, count says %d",
				ErrCountMismatch, n, list.count))
		}
	}
	check(&g.vars, true, false)
	check(&g.consts, false, true)
	check(&g.ops, false, false)
	return err
}

func verifyMembership(g *Graph, v Vertex, wantVar, wantConst bool) error {
	var err error
	if v.Graph() != g {
		err = multierr.Append(err, fmt.Errorf("%w: %s points at graph %q",
			ErrMembershipInconsistent, v, graphName(v.Graph())))
	}
	if v.Kind().IsVar() != wantVar || v.Kind().IsConst() != wantConst {
		err = multierr.Append(err, fmt.Errorf("%w: %s filed in the wrong partition",
			ErrMembershipInconsistent, v))
	}
	return err
}

func verifyOperandEdges(v Vertex) error {
	var err error
	ForEachSourceEdge(v, func(e *Edge, i int) {
		if e.sink != v {
			err = multierr.Append(err, fmt.Errorf("%w: operand %d of %s has sink back-pointer %s",
				ErrEdgeInconsistent, i, v, vertexDesc(e.sink)))
		}
		if e.source == nil {
			return
		}
		if !sinkListContains(e.source, e) {
			err = multierr.Append(err, fmt.Errorf("%w: operand %d of %s missing from sink list of %s",
				ErrEdgeInconsistent, i, v, e.source))
		}
	})
	return err
}

func verifySinkList(v Vertex) error {
	var err error
	prev := (*Edge)(nil)
	for e := v.base().sinks; e != nil; e = e.next {
		if e.source != v {
			err = multierr.Append(err, fmt.Errorf("%w: sink list of %s holds edge sourced from %s",
				ErrEdgeInconsistent, v, vertexDesc(e.source)))
		}
		if e.prev != prev {
			err = multierr.Append(err, fmt.Errorf("%w: sink list of %s has broken prev link at edge into %s",
				ErrEdgeInconsistent, v, vertexDesc(e.sink)))
		}
		prev = e
	}
	return err
}

func sinkListContains(src Vertex, target *Edge) bool {
	for e := src.base().sinks; e != nil; e = e.next {
		if e == target {
			return true
		}
	}
	return false
}

func graphName(g *Graph) string {
	if g == nil {
		return "<nil>"
	}
	return g.name
}

func vertexDesc(v Vertex) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
