package dfg_test

import (
	"fmt"

	"github.com/danlomeli/verilator/dfg"
	"github.com/danlomeli/verilator/hdltype"
	"github.com/danlomeli/verilator/source"
)

// ExampleGraph_SortTopologically builds out = Not(a + b) with the
// operations inserted consumer-first, then sorts so every producer
// precedes its consumers.
func ExampleGraph_SortTopologically() {
	types := hdltype.NewTable()
	mod := dfg.NewModule("alu", source.At("alu.v", 1, 1))
	g := dfg.NewGraph(mod, dfg.WithName("alu"))
	w8 := types.MustPacked(8)

	a := dfg.NewVar(g, mod.Variable("a", source.Loc{}, w8))
	b := dfg.NewVar(g, mod.Variable("b", source.Loc{}, w8))
	inv := dfg.NewUnary(g, dfg.KindNot, source.Loc{}, w8)
	sum := dfg.NewBinary(g, dfg.KindAdd, source.Loc{}, w8)
	sum.SetLhs(a)
	sum.SetRhs(b)
	inv.SetSrc(sum)
	out := dfg.NewVar(g, mod.Variable("out", source.Loc{}, w8))
	out.AddDriver(inv)

	fmt.Println(g.SortTopologically(false))
	g.ForEachOp(func(v dfg.Vertex) { fmt.Println(v.Kind()) })
	// Output:
	// true
	// Add
	// Not
}

// ExampleGraph_ExtractCyclicComponents quarantines a combinational loop
// so the remaining logic can be ordered.
func ExampleGraph_ExtractCyclicComponents() {
	types := hdltype.NewTable()
	mod := dfg.NewModule("top", source.Loc{})
	g := dfg.NewGraph(mod, dfg.WithName("top"))
	w1 := types.MustPacked(1)

	// A two-gate loop plus an independent wire.
	p := dfg.NewUnary(g, dfg.KindNot, source.Loc{}, w1)
	q := dfg.NewUnary(g, dfg.KindNot, source.Loc{}, w1)
	p.SetSrc(q)
	q.SetSrc(p)

	in := dfg.NewVar(g, mod.Variable("in", source.Loc{}, w1))
	out := dfg.NewVar(g, mod.Variable("out", source.Loc{}, w1))
	out.AddDriver(in)

	cyclic := g.ExtractCyclicComponents("cyclic")
	fmt.Println(len(cyclic), cyclic[0].Name())
	fmt.Println(g.SortTopologically(false))
	// Output:
	// 1 top-cyclic-0
	// true
}
