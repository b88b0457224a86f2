// Package dfg: the concrete vertex shapes.
//
// Five shapes cover the closed kind set: VarVertex (variadic driver
// buffer), ConstVertex (no operands), and the fixed-arity operation
// shapes UnaryVertex, BinaryVertex, TernaryVertex. The per-opcode Kind
// tag refines the operation shapes.
package dfg

import (
	"fmt"

	"github.com/danlomeli/verilator/hdltype"
	"github.com/danlomeli/verilator/source"
)

//------------------------------------------------------------------------
// VarVertex
//------------------------------------------------------------------------

// VarVertex references a named storage element. Its operand edges are the
// drivers of the variable, kept in a growable buffer: appending a driver
// beyond capacity doubles the buffer and relinks every live edge into the
// new storage, preserving each occupied slot's index and source.
type VarVertex struct {
	vertexBase
	variable *Variable
	srcs     []Edge // driver edge buffer; len is capacity
	srcCnt   int    // occupied slots, including vacant (unlinked) ones
}

// NewVar creates a variable-reference vertex for vari and inserts it
// into g. The vertex inherits the variable's location and type.
func NewVar(g *Graph, vari *Variable) *VarVertex {
	v := &VarVertex{variable: vari, srcs: make([]Edge, 1)}
	v.srcs[0].sink = v
	v.initBase(v, g, KindVar, vari.Loc(), vari.DType())
	return v
}

// Variable returns the storage element this vertex references.
func (v *VarVertex) Variable() *Variable { return v.variable }

// Arity returns the current driver slot count.
func (v *VarVertex) Arity() int { return v.srcCnt }

// SourceEdges returns the occupied driver slots.
func (v *VarVertex) SourceEdges() []Edge { return v.srcs[:v.srcCnt] }

// AddDriver appends a driver slot and links it to src (nil leaves the
// slot vacant). Returns the new edge.
// Complexity: amortized O(1); a grow step relinks all live edges once.
func (v *VarVertex) AddDriver(src Vertex) *Edge {
	if v.srcCnt == len(v.srcs) {
		v.growDrivers()
	}
	e := &v.srcs[v.srcCnt]
	v.srcCnt++
	if src != nil {
		e.RelinkSource(src)
	}
	return e
}

// growDrivers doubles the driver buffer. Live edges are relinked into the
// new storage slot by slot, so every occupied position keeps its logical
// index and its source; vacant slots stay vacant.
func (v *VarVertex) growDrivers() {
	capacity := 2 * len(v.srcs)
	if capacity == 0 {
		capacity = 1
	}
	next := make([]Edge, capacity)
	for i := range next {
		next[i].sink = v
	}
	for i := 0; i < v.srcCnt; i++ {
		old := &v.srcs[i]
		if old.source == nil {
			continue
		}
		next[i].RelinkSource(old.source)
		old.UnlinkSource()
	}
	v.srcs = next
}

// Accept dispatches to vis.Var, falling back to vis.Vertex.
func (v *VarVertex) Accept(vis *Visitor) {
	if vis.Var != nil {
		vis.Var(v)
		return
	}
	if vis.Vertex != nil {
		vis.Vertex(v)
	}
}

// selfEquals: variable references are equal iff they name the same
// storage element. Location metadata never participates.
func (v *VarVertex) selfEquals(that Vertex) bool {
	return v.variable == that.(*VarVertex).variable
}

func (v *VarVertex) selfHash() Hash {
	return HashString(v.variable.Name())
}

func (v *VarVertex) srcName(idx int) string {
	return fmt.Sprintf("driver%d", idx)
}

//------------------------------------------------------------------------
// ConstVertex
//------------------------------------------------------------------------

// ConstVertex is a literal packed value of arbitrary width, stored as
// 64-bit words, least significant first. It has no operand edges.
type ConstVertex struct {
	vertexBase
	words []uint64 // value, exactly (width+63)/64 words, top word masked
}

// NewConst creates a constant vertex of type t holding the given value
// words (least significant first, missing words zero) and inserts it into
// g. Supplying value bits beyond the type's width is a contract violation.
func NewConst(g *Graph, loc source.Loc, t *hdltype.Packed, words ...uint64) *ConstVertex {
	nwords := (t.Width() + 63) / 64
	if len(words) > nwords {
		contractf(loc, "constant value wider than its %d-bit type", t.Width())
	}
	value := make([]uint64, nwords)
	copy(value, words)
	if rem := t.Width() % 64; rem != 0 {
		mask := uint64(1)<<rem - 1
		if value[nwords-1]&^mask != 0 {
			contractf(loc, "constant value wider than its %d-bit type", t.Width())
		}
	}
	v := &ConstVertex{words: value}
	v.initBase(v, g, KindConst, loc, t)
	return v
}

// Words returns the value words, least significant first. The slice is
// owned by the vertex and must not be mutated.
func (v *ConstVertex) Words() []uint64 { return v.words }

// Uint64 returns the low 64 bits of the value.
func (v *ConstVertex) Uint64() uint64 {
	if len(v.words) == 0 {
		return 0
	}
	return v.words[0]
}

// IsZero reports whether every bit of the value is clear.
func (v *ConstVertex) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsOnes reports whether every bit within the value's width is set.
func (v *ConstVertex) IsOnes() bool {
	width := v.Width()
	for i, w := range v.words {
		want := ^uint64(0)
		if i == len(v.words)-1 {
			if rem := width % 64; rem != 0 {
				want = uint64(1)<<rem - 1
			}
		}
		if w != want {
			return false
		}
	}
	return true
}

// Arity returns 0: constants have no operands.
func (v *ConstVertex) Arity() int { return 0 }

// SourceEdges returns the empty operand set.
func (v *ConstVertex) SourceEdges() []Edge { return nil }

// Accept dispatches to vis.Const, falling back to vis.Vertex.
func (v *ConstVertex) Accept(vis *Visitor) {
	if vis.Const != nil {
		vis.Const(v)
		return
	}
	if vis.Vertex != nil {
		vis.Vertex(v)
	}
}

func (v *ConstVertex) selfEquals(that Vertex) bool {
	other := that.(*ConstVertex)
	if len(v.words) != len(other.words) {
		return false
	}
	for i, w := range v.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}

func (v *ConstVertex) selfHash() Hash {
	h := NewHash()
	for _, w := range v.words {
		h = h.Combine(w)
	}
	return h
}

func (v *ConstVertex) srcName(int) string { return "" }

//------------------------------------------------------------------------
// Fixed-arity operation vertices
//------------------------------------------------------------------------

// checkOpKind validates that kind belongs to the requested arity family.
func checkOpKind(kind Kind, arity int, loc source.Loc) {
	if !kind.IsOperation() || kind.FixedArity() != arity {
		contractf(loc, "kind %s is not a %d-operand operation", kind, arity)
	}
}

// UnaryVertex is an operation with one operand edge stored inline.
type UnaryVertex struct {
	vertexBase
	srcs [1]Edge
}

// NewUnary creates a unary operation vertex of the given kind and result
// type and inserts it into g. The operand slot starts vacant.
func NewUnary(g *Graph, kind Kind, loc source.Loc, t hdltype.Type) *UnaryVertex {
	checkOpKind(kind, 1, loc)
	v := &UnaryVertex{}
	v.srcs[0].sink = v
	v.initBase(v, g, kind, loc, t)
	return v
}

// Arity returns 1.
func (v *UnaryVertex) Arity() int { return 1 }

// SourceEdges returns the inline operand edge.
func (v *UnaryVertex) SourceEdges() []Edge { return v.srcs[:] }

// Src returns the operand producer, or nil if the slot is vacant.
func (v *UnaryVertex) Src() Vertex { return v.srcs[0].source }

// SetSrc relinks the operand to src.
func (v *UnaryVertex) SetSrc(src Vertex) { v.srcs[0].RelinkSource(src) }

// Accept dispatches to vis.Unary, falling back to vis.Vertex.
func (v *UnaryVertex) Accept(vis *Visitor) {
	if vis.Unary != nil {
		vis.Unary(v)
		return
	}
	if vis.Vertex != nil {
		vis.Vertex(v)
	}
}

func (v *UnaryVertex) selfEquals(Vertex) bool { return true }
func (v *UnaryVertex) selfHash() Hash         { return NewHash() }
func (v *UnaryVertex) srcName(int) string     { return "src" }

// BinaryVertex is an operation with two operand edges stored inline.
type BinaryVertex struct {
	vertexBase
	srcs [2]Edge
}

// NewBinary creates a binary operation vertex of the given kind and
// result type and inserts it into g. Both operand slots start vacant.
func NewBinary(g *Graph, kind Kind, loc source.Loc, t hdltype.Type) *BinaryVertex {
	checkOpKind(kind, 2, loc)
	v := &BinaryVertex{}
	for i := range v.srcs {
		v.srcs[i].sink = v
	}
	v.initBase(v, g, kind, loc, t)
	return v
}

// Arity returns 2.
func (v *BinaryVertex) Arity() int { return 2 }

// SourceEdges returns the inline operand edges.
func (v *BinaryVertex) SourceEdges() []Edge { return v.srcs[:] }

// Lhs returns the first operand producer, or nil if vacant.
func (v *BinaryVertex) Lhs() Vertex { return v.srcs[0].source }

// SetLhs relinks the first operand to src.
func (v *BinaryVertex) SetLhs(src Vertex) { v.srcs[0].RelinkSource(src) }

// Rhs returns the second operand producer, or nil if vacant.
func (v *BinaryVertex) Rhs() Vertex { return v.srcs[1].source }

// SetRhs relinks the second operand to src.
func (v *BinaryVertex) SetRhs(src Vertex) { v.srcs[1].RelinkSource(src) }

// Accept dispatches to vis.Binary, falling back to vis.Vertex.
func (v *BinaryVertex) Accept(vis *Visitor) {
	if vis.Binary != nil {
		vis.Binary(v)
		return
	}
	if vis.Vertex != nil {
		vis.Vertex(v)
	}
}

func (v *BinaryVertex) selfEquals(Vertex) bool { return true }
func (v *BinaryVertex) selfHash() Hash         { return NewHash() }

func (v *BinaryVertex) srcName(idx int) string {
	if v.kind == KindArraySel {
		return [2]string{"array", "index"}[idx]
	}
	return [2]string{"lhs", "rhs"}[idx]
}

// TernaryVertex is an operation with three operand edges stored inline.
type TernaryVertex struct {
	vertexBase
	srcs [3]Edge
}

// NewTernary creates a ternary operation vertex of the given kind and
// result type and inserts it into g. All operand slots start vacant.
func NewTernary(g *Graph, kind Kind, loc source.Loc, t hdltype.Type) *TernaryVertex {
	checkOpKind(kind, 3, loc)
	v := &TernaryVertex{}
	for i := range v.srcs {
		v.srcs[i].sink = v
	}
	v.initBase(v, g, kind, loc, t)
	return v
}

// Arity returns 3.
func (v *TernaryVertex) Arity() int { return 3 }

// SourceEdges returns the inline operand edges.
func (v *TernaryVertex) SourceEdges() []Edge { return v.srcs[:] }

// Cond returns the condition operand, or nil if vacant.
func (v *TernaryVertex) Cond() Vertex { return v.srcs[0].source }

// SetCond relinks the condition operand to src.
func (v *TernaryVertex) SetCond(src Vertex) { v.srcs[0].RelinkSource(src) }

// Then returns the taken-branch operand, or nil if vacant.
func (v *TernaryVertex) Then() Vertex { return v.srcs[1].source }

// SetThen relinks the taken-branch operand to src.
func (v *TernaryVertex) SetThen(src Vertex) { v.srcs[1].RelinkSource(src) }

// Else returns the fallback-branch operand, or nil if vacant.
func (v *TernaryVertex) Else() Vertex { return v.srcs[2].source }

// SetElse relinks the fallback-branch operand to src.
func (v *TernaryVertex) SetElse(src Vertex) { v.srcs[2].RelinkSource(src) }

// Accept dispatches to vis.Ternary, falling back to vis.Vertex.
func (v *TernaryVertex) Accept(vis *Visitor) {
	if vis.Ternary != nil {
		vis.Ternary(v)
		return
	}
	if vis.Vertex != nil {
		vis.Vertex(v)
	}
}

func (v *TernaryVertex) selfEquals(Vertex) bool { return true }
func (v *TernaryVertex) selfHash() Hash         { return NewHash() }

func (v *TernaryVertex) srcName(idx int) string {
	return [3]string{"cond", "then", "else"}[idx]
}
