// Package passes_test verifies the optimization passes over small
// hand-built graphs.
package passes_test

import (
	"testing"

	"github.com/danlomeli/verilator/dfg"
	"github.com/danlomeli/verilator/hdltype"
	"github.com/danlomeli/verilator/source"
)

type fixture struct {
	types *hdltype.Table
	mod   *dfg.Module
	g     *dfg.Graph
	w8    *hdltype.Packed
}

func newFixture(t *testing.T, name string) *fixture {
	t.Helper()
	types := hdltype.NewTable()
	mod := dfg.NewModule(name, source.Loc{})
	return &fixture{
		types: types,
		mod:   mod,
		g:     dfg.NewGraph(mod, dfg.WithName(name)),
		w8:    types.MustPacked(8),
	}
}

func (f *fixture) varv(name string) *dfg.VarVertex {
	return dfg.NewVar(f.g, f.mod.Variable(name, source.Loc{}, f.w8))
}

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

// driver returns the producer behind v's first driver slot.
func driver(v *dfg.VarVertex) dfg.Vertex {
	return dfg.SourceVertex(v, 0)
}
