// Package dfg: visitor dispatch over the closed vertex shape set.
package dfg

// Visitor dispatches to the most specific handler declared for a vertex's
// shape family (double dispatch via Vertex.Accept). Passes set only the
// handlers for the shapes they care about; every unset handler falls back
// to the generic Vertex handler, and an unset Vertex handler ignores the
// vertex. Per-opcode refinement happens inside a family handler by
// switching on Kind, which is closed and fixed at build time.
type Visitor struct {
	// Vertex is the generic fallback handler.
	Vertex func(Vertex)

	// Var handles variable references.
	Var func(*VarVertex)

	// Const handles constants.
	Const func(*ConstVertex)

	// Unary handles one-operand operations.
	Unary func(*UnaryVertex)

	// Binary handles two-operand operations.
	Binary func(*BinaryVertex)

	// Ternary handles three-operand operations.
	Ternary func(*TernaryVertex)
}

// Iterate dispatches v to the visitor. Equivalent to v.Accept(vis).
func (vis *Visitor) Iterate(v Vertex) { v.Accept(vis) }
