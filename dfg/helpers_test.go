// Package dfg_test verifies the data-flow graph representation: edge and
// vertex lifecycle, partition iteration, structural equality and hashing,
// scratch-storage sessions, and the graph-level algorithms.
package dfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danlomeli/verilator/dfg"
	"github.com/danlomeli/verilator/hdltype"
	"github.com/danlomeli/verilator/source"
)

// fixture bundles the pieces most graph tests need: a type table, a
// module for variable declarations, and one graph with 8-bit operands.
type fixture struct {
	types *hdltype.Table
	mod   *dfg.Module
	g     *dfg.Graph
	w8    *hdltype.Packed
}

func newFixture(t *testing.T, name string) *fixture {
	t.Helper()
	types := hdltype.NewTable()
	mod := dfg.NewModule(name, source.At(name+".v", 1, 1))
	return &fixture{
		types: types,
		mod:   mod,
		g:     dfg.NewGraph(mod, dfg.WithName(name)),
		w8:    types.MustPacked(8),
	}
}

// varv declares an 8-bit module variable and its vertex in the graph.
func (f *fixture) varv(name string) *dfg.VarVertex {
	return dfg.NewVar(f.g, f.mod.Variable(name, source.Loc{}, f.w8))
}

// constv makes an 8-bit constant vertex.
func (f *fixture) constv(value uint64) *dfg.ConstVertex {
	return dfg.NewConst(f.g, source.Loc{}, f.w8, value)
}

func (f *fixture) unary(kind dfg.Kind, src dfg.Vertex) *dfg.UnaryVertex {
	v := dfg.NewUnary(f.g, kind, source.Loc{}, f.w8)
	v.SetSrc(src)
	return v
}

func (f *fixture) binary(kind dfg.Kind, lhs, rhs dfg.Vertex) *dfg.BinaryVertex {
	v := dfg.NewBinary(f.g, kind, source.Loc{}, f.w8)
	v.SetLhs(lhs)
	v.SetRhs(rhs)
	return v
}

func (f *fixture) ternary(kind dfg.Kind, cond, then, els dfg.Vertex) *dfg.TernaryVertex {
	v := dfg.NewTernary(f.g, kind, source.Loc{}, f.w8)
	v.SetCond(cond)
	v.SetThen(then)
	v.SetElse(els)
	return v
}

// vertices snapshots the iteration order.
func vertices(g *dfg.Graph) []dfg.Vertex {
	var out []dfg.Vertex
	g.ForEachVertex(func(v dfg.Vertex) { out = append(out, v) })
	return out
}

// requireNoCrossEdges asserts that every linked edge of g stays inside g.
func requireNoCrossEdges(t *testing.T, g *dfg.Graph) {
	t.Helper()
	g.ForEachVertex(func(v dfg.Vertex) {
		dfg.ForEachSource(v, func(src dfg.Vertex) {
			require.Same(t, g, src.Graph(), "operand of %s crosses graphs", v)
		})
	})
}

// requireContractPanic asserts that fn panics with a *dfg.ContractError.
func requireContractPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract violation")
		require.IsType(t, &dfg.ContractError{}, r)
	}()
	fn()
}
