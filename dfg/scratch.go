// Package dfg: the scratch-storage facility (generation counters).
//
// Analysis passes need transient per-vertex state, and resetting every
// vertex between passes is a full-graph walk nobody wants to pay. Each
// vertex instead carries one scratch slot plus a generation tag, and the
// graph carries a generation counter: a slot is valid only while its tag
// matches the graph's current generation. Acquiring a session bumps the
// counter, which instantly invalidates every slot in the graph.
package dfg

import "github.com/danlomeli/verilator/source"

// UserDataScope is the guard for one exclusive scratch-storage session.
// Obtained from Graph.UserDataInUse and released with Release, usually
// via defer so early returns and panics release it too.
type UserDataScope struct {
	g *Graph
}

// UserDataInUse acquires exclusive use of the per-vertex scratch slots of
// this graph. Only one session may be live per graph: reentrant
// acquisition is a contract violation, as is counter overflow.
// Complexity: O(1); no vertex is visited.
func (g *Graph) UserDataInUse() *UserDataScope {
	if g.userCurrent != 0 {
		contractf(g.moduleLoc(), "conflicting use of vertex scratch storage in graph %q", g.name)
	}
	g.userCnt++
	if g.userCnt == 0 {
		contractf(g.moduleLoc(), "scratch-storage generation counter overflow in graph %q", g.name)
	}
	g.userCurrent = g.userCnt
	return &UserDataScope{g: g}
}

// Release ends the session. The stored values are not erased; they simply
// stop being "current" until a vertex is re-tagged under a future
// generation. Releasing twice is a no-op.
func (s *UserDataScope) Release() {
	if s.g != nil {
		s.g.userCurrent = 0
		s.g = nil
	}
}

// moduleLoc returns a location for graph-level contract diagnostics.
func (g *Graph) moduleLoc() source.Loc {
	if g.module != nil {
		return g.module.Loc()
	}
	return source.Loc{}
}

// UserData returns the scratch slot of v typed as T, lazily
// zero-initializing it the first time the vertex is touched under the
// current generation. Subsequent touches in the same generation return
// the same storage. Contract violations: no active session on v's graph,
// or two different T used within one session.
// Complexity: O(1)
func UserData[T any](v Vertex) *T {
	b := v.base()
	g := b.graph
	if g == nil || g.userCurrent == 0 {
		contractf(b.loc, "vertex scratch storage used without an active session")
	}
	if b.userGen != g.userCurrent {
		b.userGen = g.userCurrent
		b.userData = new(T)
	}
	p, ok := b.userData.(*T)
	if !ok {
		contractf(b.loc, "conflicting scratch storage types within one session")
	}
	return p
}
