// Package dfg: the checked downcast facility.
//
// The vertex shape set is closed, so downcasting is a plain type
// assertion. As* is the exact-cast form: a mismatch is a contract
// violation (compiler bug) and panics with the vertex's location.
// Cast* is the nullable safe-cast form.
package dfg

// asFailed reports an exact-cast mismatch.
func asFailed(v Vertex, want string) {
	contractf(v.Loc(), "vertex is not of expected type %s, but instead has kind %s", want, v.Kind())
}

// AsVar asserts that v is a variable reference. Contract violation otherwise.
func AsVar(v Vertex) *VarVertex {
	x, ok := v.(*VarVertex)
	if !ok {
		asFailed(v, "VarVertex")
	}
	return x
}

// CastVar returns v as a variable reference, or nil.
func CastVar(v Vertex) *VarVertex {
	x, _ := v.(*VarVertex)
	return x
}

// AsConst asserts that v is a constant. Contract violation otherwise.
func AsConst(v Vertex) *ConstVertex {
	x, ok := v.(*ConstVertex)
	if !ok {
		asFailed(v, "ConstVertex")
	}
	return x
}

// CastConst returns v as a constant, or nil.
func CastConst(v Vertex) *ConstVertex {
	x, _ := v.(*ConstVertex)
	return x
}

// AsUnary asserts that v is a unary operation. Contract violation otherwise.
func AsUnary(v Vertex) *UnaryVertex {
	x, ok := v.(*UnaryVertex)
	if !ok {
		asFailed(v, "UnaryVertex")
	}
	return x
}

// CastUnary returns v as a unary operation, or nil.
func CastUnary(v Vertex) *UnaryVertex {
	x, _ := v.(*UnaryVertex)
	return x
}

// AsBinary asserts that v is a binary operation. Contract violation otherwise.
func AsBinary(v Vertex) *BinaryVertex {
	x, ok := v.(*BinaryVertex)
	if !ok {
		asFailed(v, "BinaryVertex")
	}
	return x
}

// CastBinary returns v as a binary operation, or nil.
func CastBinary(v Vertex) *BinaryVertex {
	x, _ := v.(*BinaryVertex)
	return x
}

// AsTernary asserts that v is a ternary operation. Contract violation otherwise.
func AsTernary(v Vertex) *TernaryVertex {
	x, ok := v.(*TernaryVertex)
	if !ok {
		asFailed(v, "TernaryVertex")
	}
	return x
}

// CastTernary returns v as a ternary operation, or nil.
func CastTernary(v Vertex) *TernaryVertex {
	x, _ := v.(*TernaryVertex)
	return x
}

// IsZero reports whether v is a constant with every bit clear.
func IsZero(v Vertex) bool {
	if c := CastConst(v); c != nil {
		return c.IsZero()
	}
	return false
}

// IsOnes reports whether v is a constant with every bit in its width set.
func IsOnes(v Vertex) bool {
	if c := CastConst(v); c != nil {
		return c.IsOnes()
	}
	return false
}
