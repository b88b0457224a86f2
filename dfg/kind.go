// Package dfg: the closed vertex-kind set.
//
// Kinds are fixed at build time: one kind for variable references, one for
// constants, and one per operation opcode. Downcasting and visitor
// dispatch rely on this set being closed, so adding an opcode means adding
// it here, to the kindInfo table, and to the shape family it belongs to.
package dfg

// Kind is the type tag of a vertex.
type Kind uint8

// Vertex kinds. Grouped by shape family: KindVar is variadic (driver
// edges), KindConst has no operands, the rest are fixed-arity operations.
const (
	// KindInvalid is the zero Kind and never appears on a live vertex.
	KindInvalid Kind = iota

	// KindVar is a reference to named storage.
	KindVar

	// KindConst is a literal value.
	KindConst

	// Unary operations.

	KindNot    // bitwise negation
	KindNeg    // arithmetic negation
	KindRedAnd // AND reduction to 1 bit
	KindRedOr  // OR reduction to 1 bit
	KindRedXor // XOR reduction to 1 bit
	KindExtend // zero-extension to the result width

	// Binary operations.

	KindAdd
	KindSub
	KindMul
	KindAnd
	KindOr
	KindXor
	KindShiftL
	KindShiftR
	KindEq
	KindLt
	KindConcat
	KindArraySel // indexed element select: operands are (array, index)

	// Ternary operations.

	KindCond // conditional select: operands are (cond, then, else)

	kindCount // sentinel, keep last
)

// variadicArity marks kinds whose operand count is per-vertex.
const variadicArity = -1

// kindInfo carries the static metadata of one Kind.
type kindInfo struct {
	name  string
	arity int // fixed operand count, or variadicArity
}

// kindTable is indexed by Kind.
var kindTable = [kindCount]kindInfo{
	KindInvalid:  {name: "INVALID", arity: 0},
	KindVar:      {name: "Var", arity: variadicArity},
	KindConst:    {name: "Const", arity: 0},
	KindNot:      {name: "Not", arity: 1},
	KindNeg:      {name: "Neg", arity: 1},
	KindRedAnd:   {name: "RedAnd", arity: 1},
	KindRedOr:    {name: "RedOr", arity: 1},
	KindRedXor:   {name: "RedXor", arity: 1},
	KindExtend:   {name: "Extend", arity: 1},
	KindAdd:      {name: "Add", arity: 2},
	KindSub:      {name: "Sub", arity: 2},
	KindMul:      {name: "Mul", arity: 2},
	KindAnd:      {name: "And", arity: 2},
	KindOr:       {name: "Or", arity: 2},
	KindXor:      {name: "Xor", arity: 2},
	KindShiftL:   {name: "ShiftL", arity: 2},
	KindShiftR:   {name: "ShiftR", arity: 2},
	KindEq:       {name: "Eq", arity: 2},
	KindLt:       {name: "Lt", arity: 2},
	KindConcat:   {name: "Concat", arity: 2},
	KindArraySel: {name: "ArraySel", arity: 2},
	KindCond:     {name: "Cond", arity: 3},
}

// String returns the human-readable kind name.
func (k Kind) String() string {
	if k >= kindCount {
		return "INVALID"
	}
	return kindTable[k].name
}

// FixedArity returns the operand count fixed for this kind, or
// variadicArity (-1) for per-vertex operand counts (KindVar).
func (k Kind) FixedArity() int {
	if k >= kindCount {
		return 0
	}
	return kindTable[k].arity
}

// IsVar reports whether k tags a variable reference.
func (k Kind) IsVar() bool { return k == KindVar }

// IsConst reports whether k tags a constant.
func (k Kind) IsConst() bool { return k == KindConst }

// IsOperation reports whether k tags an operation vertex.
func (k Kind) IsOperation() bool {
	return k > KindConst && k < kindCount
}

// IsUnary reports whether k is a unary operation.
func (k Kind) IsUnary() bool { return k.IsOperation() && k.FixedArity() == 1 }

// IsBinary reports whether k is a binary operation.
func (k Kind) IsBinary() bool { return k.IsOperation() && k.FixedArity() == 2 }

// IsTernary reports whether k is a ternary operation.
func (k Kind) IsTernary() bool { return k.IsOperation() && k.FixedArity() == 3 }

// Commutative reports whether the operation is insensitive to operand
// order. Used by peephole rules; never by equality, which is positional.
func (k Kind) Commutative() bool {
	switch k {
	case KindAdd, KindMul, KindAnd, KindOr, KindXor, KindEq:
		return true
	default:
		return false
	}
}
