// Package dfg: the vertex base, the Vertex interface, and operations
// shared by every vertex shape.
//
// Vertex is a closed interface: the unexported base accessor restricts
// implementations to this package, so the kind set is fixed at build time
// and downcasts are plain type assertions.
package dfg

import (
	"fmt"

	"github.com/danlomeli/verilator/hdltype"
	"github.com/danlomeli/verilator/source"
)

// Vertex is one node of the data-flow graph: a variable reference, a
// constant, or an operation. Concrete types are VarVertex, ConstVertex,
// UnaryVertex, BinaryVertex, and TernaryVertex.
type Vertex interface {
	// Kind returns the type tag of this vertex.
	Kind() Kind

	// Loc returns the source location the vertex was created from.
	Loc() source.Loc

	// DType returns the canonical result type descriptor.
	DType() hdltype.Type

	// SetDType replaces the result type descriptor.
	SetDType(t hdltype.Type)

	// Graph returns the containing graph, or nil while detached.
	Graph() *Graph

	// Width returns the packed result width in bits. Calling it on a
	// vertex with an unpacked result is a contract violation.
	Width() int

	// Arity returns the number of operand slots: fixed per kind for
	// fixed-arity vertices, current occupancy for variables.
	Arity() int

	// SourceEdges returns the operand edge storage of this vertex.
	// The slice aliases vertex-owned memory: take the address of an
	// element to manipulate it, and never copy an Edge by value.
	SourceEdges() []Edge

	// HasSinks reports whether the vertex has at least one consumer. O(1).
	HasSinks() bool

	// HasMultipleSinks reports whether it has two or more consumers. O(1).
	HasMultipleSinks() bool

	// Fanout returns the exact consumer count. Explicitly O(fan-out):
	// do not call in hot inner loops without justification.
	Fanout() int

	// ForEachSink calls f for every consumer vertex. Unlinking or deleting
	// the currently visited sink inside f is safe; touching any other sink
	// of this vertex is not.
	ForEachSink(f func(Vertex))

	// ForEachSinkEdge calls f for every consumer edge, with the same
	// mutation tolerance as ForEachSink.
	ForEachSinkEdge(f func(*Edge))

	// FindSink returns the first consumer vertex satisfying p, or nil.
	FindSink(p func(Vertex) bool) Vertex

	// ReplaceWith relinks every consumer edge of this vertex to be driven
	// by newSource instead, leaving this vertex with zero sinks. A nil
	// newSource leaves the consumer edges unlinked.
	ReplaceWith(newSource Vertex)

	// UnlinkDelete unlinks all operand edges, removes the vertex from g,
	// and retires it. The vertex must have no remaining sinks.
	UnlinkDelete(g *Graph)

	// Equals reports structural equivalence with that: same kind-local
	// payload and recursively equal operands, position by position.
	Equals(that Vertex) bool

	// EqualsMemo is Equals with a caller-supplied memo, for amortizing
	// repeated comparisons over shared substructure. Operand structure
	// must stay stable between calls sharing one cache.
	EqualsMemo(that Vertex, cache EqualsCache) bool

	// Hash returns the structural hash of this vertex and its upstream
	// cone, consistent with Equals. Results are cached per vertex through
	// the scratch facility, so an active scratch session is required.
	Hash() Hash

	// Inlined reports whether code emission should render this vertex as
	// an inline sub-expression rather than materialize a temporary.
	Inlined() bool

	// Accept dispatches to the most specific handler vis declares for
	// this vertex's shape family, falling back to vis.Vertex.
	Accept(vis *Visitor)

	// String renders "Kind@loc" for diagnostics.
	String() string

	// base exposes the embedded vertexBase; unexported so the vertex set
	// stays closed to this package.
	base() *vertexBase

	// selfEquals compares only the kind-local payload of two vertices
	// already known to agree on kind and result type.
	selfEquals(that Vertex) bool

	// selfHash hashes only the kind-local payload.
	selfHash() Hash

	// srcName names the operand slot at idx for dumps and diagnostics.
	srcName(idx int) string
}

// vertexBase carries the state shared by every vertex shape: identity,
// graph membership links, the sink list head, and the scratch slot.
type vertexBase struct {
	self     Vertex       // the concrete vertex embedding this base
	kind     Kind         // type tag, fixed at construction
	loc      source.Loc   // source location, opaque payload
	dtype    hdltype.Type // canonical result type
	graph    *Graph       // containing graph, nil while detached
	prev     Vertex       // previous vertex in the kind partition list
	next     Vertex       // next vertex in the kind partition list
	sinks    *Edge        // head of the intrusive consumer list
	userGen  uint32       // scratch-slot generation tag
	userData any          // scratch-slot storage
}

// initBase wires the embedded base and registers the vertex with g.
func (b *vertexBase) initBase(self Vertex, g *Graph, kind Kind, loc source.Loc, t hdltype.Type) {
	b.self = self
	b.kind = kind
	b.loc = loc
	b.dtype = t
	g.AddVertex(self)
}

func (b *vertexBase) base() *vertexBase { return b }

// Kind returns the type tag of this vertex.
func (b *vertexBase) Kind() Kind { return b.kind }

// Loc returns the source location the vertex was created from.
func (b *vertexBase) Loc() source.Loc { return b.loc }

// DType returns the canonical result type descriptor.
func (b *vertexBase) DType() hdltype.Type { return b.dtype }

// SetDType replaces the result type descriptor.
func (b *vertexBase) SetDType(t hdltype.Type) { b.dtype = t }

// Graph returns the containing graph, or nil while detached.
func (b *vertexBase) Graph() *Graph { return b.graph }

// Width returns the packed result width in bits.
// Contract violation if the result type is unpacked.
func (b *vertexBase) Width() int {
	w, ok := hdltype.WidthOf(b.dtype)
	if !ok {
		contractf(b.loc, "Width called on unpacked value of type %s", b.dtype)
	}
	return w
}

// HasSinks reports whether the vertex has at least one consumer. O(1).
func (b *vertexBase) HasSinks() bool { return b.sinks != nil }

// HasMultipleSinks reports whether it has two or more consumers. O(1).
func (b *vertexBase) HasMultipleSinks() bool { return b.sinks != nil && b.sinks.next != nil }

// Fanout returns the exact consumer count in O(fan-out).
func (b *vertexBase) Fanout() int {
	n := 0
	for e := b.sinks; e != nil; e = e.next {
		n++
	}
	return n
}

// ForEachSink calls f for every consumer vertex. The next pointer is
// captured before f runs, so unlinking or deleting the visited sink is
// safe; other sinks of this vertex must stay untouched.
func (b *vertexBase) ForEachSink(f func(Vertex)) {
	for e := b.sinks; e != nil; {
		next := e.next
		f(e.sink)
		e = next
	}
}

// ForEachSinkEdge calls f for every consumer edge, with the same
// mutation tolerance as ForEachSink.
func (b *vertexBase) ForEachSinkEdge(f func(*Edge)) {
	for e := b.sinks; e != nil; {
		next := e.next
		f(e)
		e = next
	}
}

// FindSink returns the first consumer vertex satisfying p, or nil.
func (b *vertexBase) FindSink(p func(Vertex) bool) Vertex {
	for e := b.sinks; e != nil; e = e.next {
		if p(e.sink) {
			return e.sink
		}
	}
	return nil
}

// ReplaceWith relinks every consumer edge of this vertex to be driven by
// newSource, leaving this vertex with zero sinks. Used by simplification
// passes to retire a vertex proven redundant.
// Complexity: O(fan-out)
func (b *vertexBase) ReplaceWith(newSource Vertex) {
	for e := b.sinks; e != nil; {
		next := e.next
		e.RelinkSource(newSource)
		e = next
	}
}

// UnlinkDelete unlinks all operand edges, removes the vertex from g, and
// retires it. Deleting a vertex that still has consumers would leave
// dangling operand slots in the consumers, so it is a contract violation.
func (b *vertexBase) UnlinkDelete(g *Graph) {
	if b.sinks != nil {
		contractf(b.loc, "UnlinkDelete of %s vertex that still has sinks", b.kind)
	}
	edges := b.self.SourceEdges()
	for i := range edges {
		edges[i].UnlinkSource()
	}
	g.RemoveVertex(b.self)
}

// Inlined reports whether the vertex should render as an inline
// sub-expression at code-emission time: it has at most one consumer, or
// is a constant, a variable reference, or an indexed select whose index
// is itself a constant. Advisory only; computed here because it depends
// on fan-out and kind information private to the core.
func (b *vertexBase) Inlined() bool {
	if !b.HasMultipleSinks() {
		return true
	}
	switch b.kind {
	case KindConst, KindVar:
		return true
	case KindArraySel:
		index := b.self.SourceEdges()[1].source
		return index != nil && index.Kind() == KindConst
	default:
		return false
	}
}

// String renders "Kind@loc" for diagnostics.
func (b *vertexBase) String() string {
	return fmt.Sprintf("%s@%s", b.kind, b.loc)
}

//------------------------------------------------------------------------
// Operand-side iteration helpers.
//
// These are free functions rather than interface methods: they are thin
// loops over SourceEdges shared verbatim by every shape.
//------------------------------------------------------------------------

// SourceEdge returns the operand edge at index idx of v.
func SourceEdge(v Vertex, idx int) *Edge {
	return &v.SourceEdges()[idx]
}

// SourceVertex returns the producer at operand index idx, or nil when the
// slot is vacant.
func SourceVertex(v Vertex, idx int) Vertex {
	return v.SourceEdges()[idx].source
}

// ForEachSource calls f for every connected producer of v, in operand
// order. Vacant slots are skipped.
func ForEachSource(v Vertex, f func(Vertex)) {
	edges := v.SourceEdges()
	for i := range edges {
		if src := edges[i].source; src != nil {
			f(src)
		}
	}
}

// ForEachSourceEdge calls f for every operand edge of v with its index,
// vacant slots included.
func ForEachSourceEdge(v Vertex, f func(e *Edge, idx int)) {
	edges := v.SourceEdges()
	for i := range edges {
		f(&edges[i], i)
	}
}

// FindSourceEdge returns the first operand edge satisfying p, or nil.
func FindSourceEdge(v Vertex, p func(e *Edge, idx int) bool) *Edge {
	edges := v.SourceEdges()
	for i := range edges {
		if p(&edges[i], i) {
			return &edges[i]
		}
	}
	return nil
}
