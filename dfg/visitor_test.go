package dfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danlomeli/verilator/dfg"
)

func TestVisitor_FamilyDispatch(t *testing.T) {
	f := newFixture(t, "visit")
	a := f.varv("a")
	k := f.constv(1)
	not := f.unary(dfg.KindNot, a)
	add := f.binary(dfg.KindAdd, a, k)
	sel := f.ternary(dfg.KindCond, k, not, add)

	var got []string
	vis := &dfg.Visitor{
		Var:     func(*dfg.VarVertex) { got = append(got, "var") },
		Const:   func(*dfg.ConstVertex) { got = append(got, "const") },
		Unary:   func(*dfg.UnaryVertex) { got = append(got, "unary") },
		Binary:  func(*dfg.BinaryVertex) { got = append(got, "binary") },
		Ternary: func(*dfg.TernaryVertex) { got = append(got, "ternary") },
	}
	for _, v := range []dfg.Vertex{a, k, not, add, sel} {
		vis.Iterate(v)
	}
	require.Equal(t, []string{"var", "const", "unary", "binary", "ternary"}, got)
}

func TestVisitor_FallbackToGeneric(t *testing.T) {
	f := newFixture(t, "fallback")
	a := f.varv("a")
	not := f.unary(dfg.KindNot, a)

	generic := 0
	unary := 0
	vis := &dfg.Visitor{
		Vertex: func(dfg.Vertex) { generic++ },
		Unary:  func(*dfg.UnaryVertex) { unary++ },
	}
	vis.Iterate(a)   // no Var handler: falls back
	vis.Iterate(not) // has a family handler: no fallback
	require.Equal(t, 1, generic)
	require.Equal(t, 1, unary)
}

func TestVisitor_NoHandlersIsSilent(t *testing.T) {
	f := newFixture(t, "silent")
	a := f.varv("a")
	require.NotPanics(t, func() { (&dfg.Visitor{}).Iterate(a) })
}
