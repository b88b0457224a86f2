package passes

import (
	"github.com/danlomeli/verilator/dfg"
	"github.com/danlomeli/verilator/hdltype"
)

// FoldPeephole applies local algebraic rewrites until none fire:
//
//	Not(Not(x))            -> x         Neg(Neg(x))            -> x
//	And(x, ones)           -> x         And(x, 0)              -> 0
//	Or(x, 0)               -> x         Or(x, ones)            -> ones
//	Xor(x, 0)              -> x         Xor(x, x)              -> 0
//	Add(x, 0), Sub(x, 0)   -> x         Sub(x, x)              -> 0
//	Mul(x, 1)              -> x         Mul(x, 0)              -> 0
//	ShiftL(x, 0), ShiftR(x, 0) -> x
//	Cond(c, t, e)          -> t or e when c is constant
//	Cond(c, t, t)          -> t
//
// Commutative rules match either operand order. Folded vertices are
// deleted; their consumers are relinked to the replacement. Returns the
// number of vertices folded away.
func FoldPeephole(g *dfg.Graph) int {
	folded := 0
	g.RunToFixedPoint(func(v dfg.Vertex) bool {
		w := foldOne(g, v)
		if w == nil {
			return false
		}
		v.ReplaceWith(w)
		v.UnlinkDelete(g)
		folded++
		return true
	})
	return folded
}

// foldOne returns the replacement for v, or nil when no rule applies.
func foldOne(g *dfg.Graph, v dfg.Vertex) dfg.Vertex {
	switch {
	case v.Kind().IsUnary():
		return foldUnary(dfg.CastUnary(v))
	case v.Kind().IsBinary():
		return foldBinary(g, dfg.CastBinary(v))
	case v.Kind() == dfg.KindCond:
		return foldCond(dfg.CastTernary(v))
	}
	return nil
}

func foldUnary(v *dfg.UnaryVertex) dfg.Vertex {
	if v.Kind() != dfg.KindNot && v.Kind() != dfg.KindNeg {
		return nil
	}
	inner := dfg.CastUnary(v.Src())
	if inner == nil || inner.Kind() != v.Kind() || inner.Src() == nil {
		return nil
	}
	return inner.Src()
}

func foldBinary(g *dfg.Graph, v *dfg.BinaryVertex) dfg.Vertex {
	lhs, rhs := v.Lhs(), v.Rhs()
	if lhs == nil || rhs == nil {
		return nil
	}
	cl, cr := dfg.CastConst(lhs), dfg.CastConst(rhs)
	switch v.Kind() {
	case dfg.KindAnd:
		switch {
		case cr != nil && cr.IsOnes():
			return lhs
		case cl != nil && cl.IsOnes():
			return rhs
		case cr != nil && cr.IsZero():
			return rhs
		case cl != nil && cl.IsZero():
			return lhs
		}
	case dfg.KindOr:
		switch {
		case cr != nil && cr.IsZero():
			return lhs
		case cl != nil && cl.IsZero():
			return rhs
		case cr != nil && cr.IsOnes():
			return rhs
		case cl != nil && cl.IsOnes():
			return lhs
		}
	case dfg.KindXor:
		switch {
		case cr != nil && cr.IsZero():
			return lhs
		case cl != nil && cl.IsZero():
			return rhs
		case lhs == rhs:
			return zeroLike(g, v)
		}
	case dfg.KindAdd:
		switch {
		case cr != nil && cr.IsZero():
			return lhs
		case cl != nil && cl.IsZero():
			return rhs
		}
	case dfg.KindSub:
		switch {
		case cr != nil && cr.IsZero():
			return lhs
		case lhs == rhs:
			return zeroLike(g, v)
		}
	case dfg.KindMul:
		switch {
		case cr != nil && isConstOne(cr):
			return lhs
		case cl != nil && isConstOne(cl):
			return rhs
		case cr != nil && cr.IsZero():
			return rhs
		case cl != nil && cl.IsZero():
			return lhs
		}
	case dfg.KindShiftL, dfg.KindShiftR:
		if cr != nil && cr.IsZero() {
			return lhs
		}
	}
	return nil
}

func foldCond(v *dfg.TernaryVertex) dfg.Vertex {
	if v.Then() != nil && v.Then() == v.Else() {
		return v.Then()
	}
	c := dfg.CastConst(v.Cond())
	if c == nil {
		return nil
	}
	if c.IsZero() {
		return v.Else()
	}
	return v.Then()
}

// zeroLike materializes an all-zero constant with v's result type.
// Only packed results reach the rules that call this.
func zeroLike(g *dfg.Graph, v dfg.Vertex) dfg.Vertex {
	t, ok := v.DType().(*hdltype.Packed)
	if !ok {
		return nil
	}
	return dfg.NewConst(g, v.Loc(), t)
}

func isConstOne(c *dfg.ConstVertex) bool {
	words := c.Words()
	if words[0] != 1 {
		return false
	}
	for _, w := range words[1:] {
		if w != 0 {
			return false
		}
	}
	return true
}
