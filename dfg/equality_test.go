package dfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danlomeli/verilator/dfg"
	"github.com/danlomeli/verilator/source"
)

func TestEquals_Structural(t *testing.T) {
	f := newFixture(t, "equals")
	a := f.varv("a")
	b := f.varv("b")

	x := f.binary(dfg.KindAdd, a, b)
	y := f.binary(dfg.KindAdd, a, b)
	z := f.binary(dfg.KindAdd, b, a)

	require.True(t, x.Equals(x), "reflexive")
	require.True(t, x.Equals(y), "same operands, same order")
	require.True(t, y.Equals(x), "symmetric")
	require.False(t, x.Equals(z), "operand order is significant")
}

func TestEquals_Variables(t *testing.T) {
	f := newFixture(t, "equalsvar")
	decl := f.mod.Variable("v", source.Loc{}, f.w8)
	v1 := dfg.NewVar(f.g, decl)
	v2 := dfg.NewVar(f.g, decl)
	other := f.varv("w")

	require.True(t, v1.Equals(v2), "same declaration")
	require.False(t, v1.Equals(other), "distinct declarations")
}

func TestEquals_Constants(t *testing.T) {
	f := newFixture(t, "equalsconst")
	require.True(t, f.constv(7).Equals(f.constv(7)))
	require.False(t, f.constv(7).Equals(f.constv(8)))

	// Same value, different width: not equal.
	w16 := f.types.MustPacked(16)
	narrow := f.constv(7)
	wide := dfg.NewConst(f.g, source.Loc{}, w16, 7)
	require.False(t, narrow.Equals(wide))
}

func TestEquals_KindAndTypeMismatch(t *testing.T) {
	f := newFixture(t, "equalskind")
	a := f.varv("a")
	b := f.varv("b")
	require.False(t, f.binary(dfg.KindAdd, a, b).Equals(f.binary(dfg.KindSub, a, b)))

	w16 := f.types.MustPacked(16)
	addW := dfg.NewBinary(f.g, dfg.KindAdd, source.Loc{}, w16)
	addW.SetLhs(a)
	addW.SetRhs(b)
	require.False(t, f.binary(dfg.KindAdd, a, b).Equals(addW))
}

func TestEquals_VacantSlots(t *testing.T) {
	f := newFixture(t, "equalsvacant")
	a := f.varv("a")
	x := f.binary(dfg.KindAdd, a, nil)
	y := f.binary(dfg.KindAdd, a, nil)
	z := f.binary(dfg.KindAdd, a, f.constv(1))

	require.True(t, x.Equals(y), "matching vacant slots")
	require.False(t, x.Equals(z), "vacant versus connected")
	require.False(t, z.Equals(x), "connected versus vacant")
}

func TestEquals_DeepSharedCache(t *testing.T) {
	f := newFixture(t, "equalsdeep")
	a := f.varv("a")
	b := f.varv("b")

	build := func() dfg.Vertex {
		sum := f.binary(dfg.KindAdd, a, b)
		sq := f.binary(dfg.KindMul, sum, sum)
		return f.unary(dfg.KindNot, sq)
	}
	x, y := build(), build()

	cache := dfg.NewEqualsCache()
	require.True(t, x.EqualsMemo(y, cache))
	// Memoized re-query agrees.
	require.True(t, x.EqualsMemo(y, cache))
}

func TestEquals_CyclicTerminates(t *testing.T) {
	f := newFixture(t, "equalscycle")
	build := func() (*dfg.UnaryVertex, *dfg.UnaryVertex) {
		p := f.unary(dfg.KindNot, nil)
		q := f.unary(dfg.KindNot, p)
		p.SetSrc(q)
		return p, q
	}
	p1, _ := build()
	p2, _ := build()

	// Two isomorphic two-vertex cycles: comparison must terminate and
	// report equivalence.
	require.True(t, p1.Equals(p2))
}

func TestHash_ConsistentWithEquals(t *testing.T) {
	f := newFixture(t, "hash")
	a := f.varv("a")
	b := f.varv("b")
	x := f.binary(dfg.KindAdd, a, b)
	y := f.binary(dfg.KindAdd, a, b)
	z := f.binary(dfg.KindSub, a, b)

	scope := f.g.UserDataInUse()
	defer scope.Release()

	require.Equal(t, x.Hash(), y.Hash(), "equal vertices hash equal")
	require.NotEqual(t, x.Hash(), z.Hash(), "kind feeds the hash")
	require.Equal(t, x.Hash(), x.Hash(), "cached re-query is stable")
}

func TestHash_RequiresScratchSession(t *testing.T) {
	f := newFixture(t, "hashnoscope")
	a := f.varv("a")
	requireContractPanic(t, func() { a.Hash() })
}

func TestHash_CyclicTerminates(t *testing.T) {
	f := newFixture(t, "hashcycle")
	p := f.unary(dfg.KindNot, nil)
	q := f.unary(dfg.KindNot, p)
	p.SetSrc(q)

	scope := f.g.UserDataInUse()
	defer scope.Release()
	require.NotPanics(t, func() { _ = p.Hash() })
}
