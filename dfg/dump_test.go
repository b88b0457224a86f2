package dfg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danlomeli/verilator/dfg"
)

func TestWriteDot(t *testing.T) {
	f := newFixture(t, "dot")
	a := f.varv("a")
	b := f.varv("b")
	sum := f.binary(dfg.KindAdd, a, b)
	o := f.varv("o")
	o.AddDriver(sum)

	dot := f.g.DotString("after-build")
	require.True(t, strings.HasPrefix(dot, `digraph "dot after-build" {`))
	require.True(t, strings.HasSuffix(dot, "}\n"))

	// One node line per vertex, one edge line per linked operand.
	nodes, edges := 0, 0
	for _, line := range strings.Split(dot, "\n") {
		switch {
		case strings.Contains(line, " -> "):
			edges++
		case strings.HasPrefix(line, "  n"):
			nodes++
		}
	}
	require.Equal(t, 4, nodes, "node lines")
	require.Equal(t, 3, edges, "edge lines")

	// Variables render as boxes with their declared name; operand slots
	// of multi-operand vertices are labelled.
	require.Contains(t, dot, `"a\nlogic [7:0]"`)
	require.Contains(t, dot, "shape=box")
	require.Contains(t, dot, `[label="lhs"]`)
	require.Contains(t, dot, `[label="rhs"]`)
}

func TestWriteDot_Deterministic(t *testing.T) {
	f := newFixture(t, "det")
	a := f.varv("a")
	o := f.varv("o")
	o.AddDriver(f.unary(dfg.KindNot, a))

	require.Equal(t, f.g.DotString(""), f.g.DotString(""))
}
