// Package dfg: the directed edge between a consumer and its producer.
//
// An Edge belongs to exactly one sink vertex for its whole lifetime: fixed
// arity vertices embed their edges in an inline array, variables keep
// theirs in a growable buffer. The same Edge simultaneously participates
// in the source vertex's intrusive doubly-linked sink list, which is why
// edges must never be copied by value: only pointers into the owning
// vertex's storage are meaningful.
package dfg

// Edge is a directed, single-owner link from a consumer ("sink") vertex
// to a producer ("source") vertex.
//
// The zero source means a vacant operand slot: such an edge is excluded
// from traversal, equality, and hashing.
type Edge struct {
	next   *Edge  // next edge in the source's sink list
	prev   *Edge  // previous edge in the source's sink list
	source Vertex // driving vertex, nil while unlinked
	sink   Vertex // owning vertex, fixed at construction
}

// Source returns the vertex driving this edge, or nil if unlinked.
func (e *Edge) Source() Vertex { return e.source }

// Sink returns the vertex owning (consuming through) this edge.
// Fixed at construction.
func (e *Edge) Sink() Vertex { return e.sink }

// Linked reports whether the edge currently has a driver.
func (e *Edge) Linked() bool { return e.source != nil }

// UnlinkSource removes this edge from its source vertex's sink list and
// clears the source. Calling it on an already unlinked edge is a no-op.
// Side effects are confined to the source vertex's sink list; no
// graph-wide bookkeeping is touched.
// Complexity: O(1)
func (e *Edge) UnlinkSource() {
	src := e.source
	if src == nil {
		return
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		src.base().sinks = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.next = nil
	e.prev = nil
	e.source = nil
}

// RelinkSource unlinks the current source, if any, then links this edge
// into newSource's sink list and records newSource as the driver.
// Passing nil leaves the edge unlinked (a vacant operand slot).
// The position of the edge within the sink list is unspecified.
// Complexity: O(1)
func (e *Edge) RelinkSource(newSource Vertex) {
	e.UnlinkSource()
	if newSource == nil {
		return
	}
	b := newSource.base()
	e.next = b.sinks
	if e.next != nil {
		e.next.prev = e
	}
	b.sinks = e
	e.source = newSource
}
